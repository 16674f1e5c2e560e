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

package date

import (
	"time"
)

// ISO is the layout used for release dates and watch dates throughout.
const ISO = "2006-01-02"

// Parse a date string to time in format yyyy-mm-dd, yyyy-mm, yyyy.
func ParseDate(date string) (t time.Time) {
	if date == "" {
		return t
	}
	var err error
	t, err = time.Parse("2006-1-2", date)
	if err != nil {
		t, err = time.Parse("2006-1", date)
		if err != nil {
			t, err = time.Parse("2006", date)
			if err != nil {
				t = time.Time{}
			}
		}
	}
	return t
}

// ValidDate reports whether date is a complete yyyy-mm-dd string, the only
// form accepted for watch dates. Same-day ordering matches on the literal
// string, so a looser form would silently split a day into groups.
func ValidDate(date string) bool {
	_, err := time.Parse(ISO, date)
	return err == nil
}

// Year of a yyyy-mm-dd string, or empty.
func Year(date string) string {
	t := ParseDate(date)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006")
}

const Simple12 = "Jan 02 03:04 PM"

func Format(t time.Time) string {
	return t.Format(Simple12)
}
