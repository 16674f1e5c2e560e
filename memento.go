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

// Memento keeps a personal movie-watching history: a local catalog of
// movies and people pulled from TMDB, a watchlist, recorded plays with
// dates and places, and statistics derived from all of the above.
package memento

const (
	AppName = "memento"
	Version = "0.3.1"
	Contact = "https://github.com/memento-dev/memento"
)
