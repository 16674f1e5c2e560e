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
	"path/filepath"
	"testing"

	"github.com/memento-dev/memento/config"
	"github.com/memento-dev/memento/lib/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrack(t *testing.T) *Track {
	cfg := &config.Config{
		Track: config.TrackConfig{
			DB: config.DatabaseConfig{
				Driver: "sqlite3",
				Source: filepath.Join(t.TempDir(), "memento.db"),
			},
			CastLimit:     10,
			ProducerLimit: 5,
			CrewJobs: map[string]string{
				"director":                RoleDirector,
				"producer":                RoleProducer,
				"director of photography": RoleCinematographer,
				"original music composer": RoleComposer,
			},
			RecentLimit: 6,
			TopLimit:    6,
		},
	}
	track := NewTrack(cfg)
	err := track.Open()
	require.NoError(t, err)
	t.Cleanup(track.Close)
	return track
}

func testMovie(t *testing.T, track *Track, tmid int, title string, runtime int) *Movie {
	m, err := track.ResolveMovie(&tmdb.Movie{
		ID:          tmid,
		Title:       title,
		Runtime:     runtime,
		ReleaseDate: "1999-10-15",
	})
	require.NoError(t, err)
	return m
}

func testPerson(t *testing.T, track *Track, peid int, name string) *Person {
	p, err := track.ResolvePerson(&tmdb.Person{ID: peid, Name: name})
	require.NoError(t, err)
	return p
}

// Everything a single movie goes through: import, watchlist, plays at a
// place, stats, and removal of the place.
func TestMovieLifecycle(t *testing.T) {
	track := testTrack(t)

	m, err := track.ResolveMovie(&tmdb.Movie{
		ID:          550,
		IMDB_ID:     "tt0137523",
		Title:       "Fight Club",
		Runtime:     139,
		ReleaseDate: "1999-10-15",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(550), m.TMID)
	assert.Equal(t, "Fight Club", m.Title)

	director := testPerson(t, track, 7467, "David Fincher")
	actor := testPerson(t, track, 819, "Edward Norton")
	err = track.ReplaceCredits(m.ID, []Credit{
		{PersonID: director.ID, Role: RoleDirector, Rank: 0},
		{PersonID: actor.ID, Role: RoleActor, Character: "The Narrator", Rank: 1},
	})
	require.NoError(t, err)

	err = track.AddToWatchlist(m.ID)
	require.NoError(t, err)
	onList, err := track.InWatchlist(m.ID)
	require.NoError(t, err)
	assert.True(t, onList)

	home, err := track.AddPlace("Home", false)
	require.NoError(t, err)
	_, err = track.AddPlay(m.ID, "2024-05-01", &home.ID, 0)
	require.NoError(t, err)
	_, err = track.AddPlay(m.ID, "2024-05-01", nil, 0)
	require.NoError(t, err)

	err = track.RemoveFromWatchlist(m.ID)
	require.NoError(t, err)

	stats, err := track.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Plays)
	assert.Equal(t, int64(1), stats.UniqueMovies)
	assert.Equal(t, int64(0), stats.WatchlistCount)
	assert.Equal(t, int64(139), stats.RuntimeMinutes)

	err = track.DeletePlace(home.ID)
	require.NoError(t, err)

	plays, err := track.MoviePlays(m.ID)
	require.NoError(t, err)
	require.Len(t, plays, 2)
	for _, p := range plays {
		assert.Equal(t, "2024-05-01", p.Date)
		assert.Nil(t, p.PlaceID)
	}
}

func TestHasMovies(t *testing.T) {
	track := testTrack(t)
	assert.False(t, track.HasMovies())
	testMovie(t, track, 550, "Fight Club", 139)
	assert.True(t, track.HasMovies())
}
