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

package track

import "errors"

var (
	// validation errors, raised before any query is issued
	ErrMissingTMID = errors.New("missing TMDB movie id")
	ErrMissingPEID = errors.New("missing TMDB person id")
	ErrInvalidDate = errors.New("watch date must be yyyy-mm-dd")

	// lookup failures
	ErrMovieNotFound  = errors.New("movie not found")
	ErrPersonNotFound = errors.New("person not found")
	ErrPlaceNotFound  = errors.New("place not found")
	ErrPlayNotFound   = errors.New("play not found")

	// ErrAfterUpsert means an upserted row could not be found on the
	// follow-up lookup, an unexpected-state condition.
	ErrAfterUpsert = errors.New("row missing after upsert")
)
