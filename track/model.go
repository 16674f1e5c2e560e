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

import (
	"time"

	"github.com/memento-dev/memento/lib/gorm"
)

// Movie is a locally tracked movie. TMID is the TMDB id and the natural
// key for upsert; IMID is the optional IMDb cross-reference, unique when
// present. Dates are kept as yyyy-mm-dd strings, the form TMDB serves
// them in.
type Movie struct {
	gorm.Model
	TMID             int64  `gorm:"uniqueIndex:idx_movie_tmid"`
	IMID             string `gorm:"uniqueIndex:idx_movie_imid,where:im_id <> ''"`
	Title            string
	SortTitle        string
	PosterPath       string
	Tagline          string
	Overview         string
	OriginalLanguage string
	Runtime          int
	Date             string // release date
	VoteAverage      float32
	VoteCount        int
	ImdbRating       *float32
	Revenue          int64
}

type Person struct {
	gorm.Model
	PEID        int64 `gorm:"uniqueIndex:idx_person_peid"`
	Name        string
	ProfilePath string
	Bio         string
	Birthday    string
	Birthplace  string
	Deathday    string
}

func (Person) TableName() string {
	return "people" // not persons
}

// Credit roles. A person may hold several credits on one movie under
// different roles; Rank preserves TMDB's original billing order.
const (
	RoleDirector        = "director"
	RoleProducer        = "producer"
	RoleActor           = "actor"
	RoleCinematographer = "cinematographer"
	RoleComposer        = "composer"
)

type Credit struct {
	gorm.Model
	MovieID   uint `gorm:"index:idx_credit_movie"`
	PersonID  uint `gorm:"index:idx_credit_person"`
	Role      string
	Character string // acting roles only
	Rank      int
}

type WatchlistEntry struct {
	gorm.Model
	MovieID uint `gorm:"index:idx_watchlist_movie"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}

type Place struct {
	gorm.Model
	Name   string `gorm:"uniqueIndex:idx_place_name"`
	Cinema bool
}

// Play is a single viewing event. Date is the watch date as a yyyy-mm-dd
// string and WatchOrder distinguishes multiple plays on the same date;
// ordering for display is always date desc, watch_order desc.
type Play struct {
	gorm.Model
	MovieID    uint `gorm:"index:idx_play_movie"`
	Date       string
	WatchOrder int
	PlaceID    *uint
}

// PlayDetail is a play joined with its movie and optional place.
type PlayDetail struct {
	ID         uint
	MovieID    uint
	TMID       int64
	Title      string
	PosterPath string
	Date       string
	WatchOrder int
	PlaceID    *uint
	PlaceName  string
	Cinema     bool
}

// CreditDetail is a credit joined with its person.
type CreditDetail struct {
	ID          uint
	Role        string
	Character   string
	Rank        int
	PersonID    uint
	PEID        int64
	Name        string
	ProfilePath string
}

type WatchlistMovie struct {
	MovieID     uint
	TMID        int64
	Title       string
	PosterPath  string
	Tagline     string
	Date        string
	Runtime     int
	VoteAverage float32
	AddedAt     time.Time
}

// Stats are the dashboard numbers. RuntimeMinutes sums each distinct
// played movie's runtime once, no matter how many plays it has.
type Stats struct {
	Plays          int64
	UniqueMovies   int64
	WatchlistCount int64
	RuntimeMinutes int64
}

// PersonStats ranks a person within one role: total credited appearances
// and the number of distinct movies they appear in.
type PersonStats struct {
	PersonID    uint
	PEID        int64
	Name        string
	ProfilePath string
	Role        string
	Appearances int
	Movies      int
}

// RecentMovie is a distinct played movie with its most recent watch date.
type RecentMovie struct {
	MovieID     uint
	TMID        int64
	Title       string
	PosterPath  string
	LastWatched string
}
