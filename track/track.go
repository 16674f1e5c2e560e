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

// Package track is the movie-watching history: the local catalog of
// movies, people and credits imported from TMDB, the watchlist, recorded
// plays with dates and places, and the statistics derived from them. All
// state lives in a single sqlite database owned by Track; operations are
// synchronous and multi-step writes run inside transactions.
package track

import (
	"github.com/memento-dev/memento/config"
	"github.com/memento-dev/memento/lib/imdb"
	"github.com/memento-dev/memento/lib/tmdb"
	"gorm.io/gorm"
)

type Track struct {
	config *config.Config
	db     *gorm.DB
	tmdb   *tmdb.TMDB
	imdb   *imdb.IMDB
}

func NewTrack(config *config.Config) *Track {
	return &Track{
		config: config,
		tmdb:   tmdb.NewTMDB(config),
		imdb:   imdb.NewIMDB(config),
	}
}

func (t *Track) Open() error {
	return t.openDB()
}

func (t *Track) Close() {
	t.closeDB()
}

// Search queries TMDB by title; results are remote records, persisted
// only when one is imported with SyncMovie.
func (t *Track) Search(q string) ([]tmdb.MovieResult, error) {
	return t.tmdb.MovieSearch(q)
}

func (t *Track) HasMovies() bool {
	count, _ := t.MovieCount()
	return count > 0
}
