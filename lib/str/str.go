// Copyright (C) 2026 The Memento Authors.
//
// This file is part of Memento.
//
// Memento is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Memento is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Memento.  If not, see <https://www.gnu.org/licenses/>.

package str

import (
	"strconv"
	"strings"
)

var sortPrefixes = []string{"The ", "A ", "An "}

// SortTitle moves a leading article to the end so titles sort naturally:
// "The Shining" -> "Shining, The".
func SortTitle(title string) string {
	for _, p := range sortPrefixes {
		if strings.HasPrefix(title, p) {
			return strings.TrimPrefix(title, p) + ", " + strings.TrimSpace(p)
		}
	}
	return title
}

func Atoi(a string) int {
	i, err := strconv.Atoi(a)
	if err != nil {
		i = 0
	}
	return i
}

// TruncateText shortens s to at most max runes, appending an ellipsis.
func TruncateText(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max])) + "..."
}
