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
	"testing"

	"github.com/memento-dev/memento/lib/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMovieUpsert(t *testing.T) {
	track := testTrack(t)

	first, err := track.ResolveMovie(&tmdb.Movie{
		ID:          603,
		Title:       "The Matrix",
		Runtime:     136,
		ReleaseDate: "1999-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "Matrix, The", first.SortTitle)

	// re-import refreshes in place, never duplicates
	second, err := track.ResolveMovie(&tmdb.Movie{
		ID:          603,
		Title:       "The Matrix",
		Tagline:     "Free your mind.",
		Runtime:     136,
		ReleaseDate: "1999-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Free your mind.", second.Tagline)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))

	count, err := track.MovieCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestResolveMovieDuplicateIMID(t *testing.T) {
	track := testTrack(t)

	first, err := track.ResolveMovie(&tmdb.Movie{
		ID: 550, IMDB_ID: "tt0137523", Title: "Fight Club"})
	require.NoError(t, err)

	// a second movie claiming the same IMDb id is rejected
	_, err = track.ResolveMovie(&tmdb.Movie{
		ID: 603, IMDB_ID: "tt0137523", Title: "The Matrix"})
	assert.Error(t, err)

	// re-importing the same movie keeps its id without conflict
	again, err := track.ResolveMovie(&tmdb.Movie{
		ID: 550, IMDB_ID: "tt0137523", Title: "Fight Club"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// movies without an IMDb id never collide with each other
	_, err = track.ResolveMovie(&tmdb.Movie{ID: 604, Title: "Reloaded"})
	require.NoError(t, err)
	_, err = track.ResolveMovie(&tmdb.Movie{ID: 605, Title: "Revolutions"})
	require.NoError(t, err)
}

func TestResolveMovieUntitled(t *testing.T) {
	track := testTrack(t)
	m, err := track.ResolveMovie(&tmdb.Movie{ID: 42})
	require.NoError(t, err)
	assert.Equal(t, "Untitled", m.Title)
}

func TestResolveMovieMissingID(t *testing.T) {
	track := testTrack(t)
	_, err := track.ResolveMovie(nil)
	assert.ErrorIs(t, err, ErrMissingTMID)
	_, err = track.ResolveMovie(&tmdb.Movie{Title: "No ID"})
	assert.ErrorIs(t, err, ErrMissingTMID)
}

func TestResolvePersonUpsert(t *testing.T) {
	track := testTrack(t)

	first := testPerson(t, track, 6384, "Keanu Reeves")
	p, err := track.ResolvePerson(&tmdb.Person{
		ID:       6384,
		Name:     "Keanu Reeves",
		Birthday: "1964-09-02",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, p.ID)
	assert.Equal(t, "1964-09-02", p.Birthday)

	count, err := track.PersonCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = track.ResolvePerson(nil)
	assert.ErrorIs(t, err, ErrMissingPEID)
}

func TestMovieNotFound(t *testing.T) {
	track := testTrack(t)
	_, err := track.Movie(550)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	_, err = track.LookupMovie(1)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	_, err = track.Person(7467)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestReplaceCredits(t *testing.T) {
	track := testTrack(t)
	m := testMovie(t, track, 550, "Fight Club", 139)
	director := testPerson(t, track, 7467, "David Fincher")
	actor := testPerson(t, track, 819, "Edward Norton")

	err := track.ReplaceCredits(m.ID, []Credit{
		{PersonID: director.ID, Role: RoleDirector, Rank: 0},
		{PersonID: actor.ID, Role: RoleActor, Character: "The Narrator", Rank: 1},
	})
	require.NoError(t, err)

	credits, err := track.MovieCredits(m.ID)
	require.NoError(t, err)
	require.Len(t, credits, 2)
	assert.Equal(t, RoleActor, credits[0].Role)
	assert.Equal(t, "The Narrator", credits[0].Character)
	assert.Equal(t, "Edward Norton", credits[0].Name)
	assert.Equal(t, RoleDirector, credits[1].Role)

	// replacing shrinks the set to exactly the new list
	err = track.ReplaceCredits(m.ID, []Credit{
		{PersonID: director.ID, Role: RoleDirector, Rank: 0},
	})
	require.NoError(t, err)
	credits, err = track.MovieCredits(m.ID)
	require.NoError(t, err)
	require.Len(t, credits, 1)

	// an empty refresh leaves stored credits alone
	err = track.ReplaceCredits(m.ID, nil)
	require.NoError(t, err)
	credits, err = track.MovieCredits(m.ID)
	require.NoError(t, err)
	assert.Len(t, credits, 1)
}

func TestPersonMovies(t *testing.T) {
	track := testTrack(t)
	older, err := track.ResolveMovie(&tmdb.Movie{
		ID: 807, Title: "Se7en", ReleaseDate: "1995-09-22"})
	require.NoError(t, err)
	newer, err := track.ResolveMovie(&tmdb.Movie{
		ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15"})
	require.NoError(t, err)
	director := testPerson(t, track, 7467, "David Fincher")

	for _, m := range []*Movie{older, newer} {
		err = track.ReplaceCredits(m.ID, []Credit{
			{PersonID: director.ID, Role: RoleDirector, Rank: 0},
		})
		require.NoError(t, err)
	}

	movies, err := track.PersonMovies(director.ID)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Fight Club", movies[0].Title)
	assert.Equal(t, "Se7en", movies[1].Title)
}

func TestWatchlist(t *testing.T) {
	track := testTrack(t)
	m := testMovie(t, track, 550, "Fight Club", 139)

	err := track.AddToWatchlist(m.ID)
	require.NoError(t, err)
	// second add is a no-op
	err = track.AddToWatchlist(m.ID)
	require.NoError(t, err)

	count, err := track.WatchlistCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	movies, err := track.WatchlistMovies()
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(550), movies[0].TMID)

	err = track.RemoveFromWatchlist(m.ID)
	require.NoError(t, err)
	onList, err := track.InWatchlist(m.ID)
	require.NoError(t, err)
	assert.False(t, onList)
}

func TestWatchlistUnknownMovie(t *testing.T) {
	track := testTrack(t)
	err := track.AddToWatchlist(99)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestAddPlayWatchOrder(t *testing.T) {
	track := testTrack(t)
	m := testMovie(t, track, 550, "Fight Club", 139)

	// same-day plays take the next order; a new day starts at 1
	for i, want := range []int{1, 2, 3} {
		p, err := track.AddPlay(m.ID, "2024-05-01", nil, 0)
		require.NoError(t, err, "play %d", i)
		assert.Equal(t, want, p.WatchOrder)
	}
	p, err := track.AddPlay(m.ID, "2024-05-02", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.WatchOrder)

	// explicit order is kept as given
	p, err = track.AddPlay(m.ID, "2024-05-01", nil, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, p.WatchOrder)
}

func TestAddPlayInvalid(t *testing.T) {
	track := testTrack(t)
	m := testMovie(t, track, 550, "Fight Club", 139)

	_, err := track.AddPlay(m.ID, "2024-5-1", nil, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = track.AddPlay(m.ID, "not a date", nil, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = track.AddPlay(m.ID+1, "2024-05-01", nil, 0)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestUpdateDeletePlay(t *testing.T) {
	track := testTrack(t)
	m := testMovie(t, track, 550, "Fight Club", 139)
	p, err := track.AddPlay(m.ID, "2024-05-01", nil, 0)
	require.NoError(t, err)

	err = track.UpdatePlay(p.ID, "2024-06-01", nil, 2)
	require.NoError(t, err)
	plays, err := track.MoviePlays(m.ID)
	require.NoError(t, err)
	require.Len(t, plays, 1)
	assert.Equal(t, "2024-06-01", plays[0].Date)
	assert.Equal(t, 2, plays[0].WatchOrder)

	err = track.UpdatePlay(p.ID, "bad", nil, 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
	err = track.UpdatePlay(p.ID+1, "2024-06-01", nil, 1)
	assert.ErrorIs(t, err, ErrPlayNotFound)

	err = track.DeletePlay(p.ID)
	require.NoError(t, err)
	err = track.DeletePlay(p.ID)
	assert.ErrorIs(t, err, ErrPlayNotFound)
}

func TestPlaysOrdering(t *testing.T) {
	track := testTrack(t)
	m := testMovie(t, track, 550, "Fight Club", 139)

	_, err := track.AddPlay(m.ID, "2024-05-01", nil, 0)
	require.NoError(t, err)
	_, err = track.AddPlay(m.ID, "2024-05-03", nil, 0)
	require.NoError(t, err)
	_, err = track.AddPlay(m.ID, "2024-05-01", nil, 0)
	require.NoError(t, err)

	plays, err := track.Plays()
	require.NoError(t, err)
	require.Len(t, plays, 3)
	assert.Equal(t, "2024-05-03", plays[0].Date)
	assert.Equal(t, "2024-05-01", plays[1].Date)
	assert.Equal(t, 2, plays[1].WatchOrder)
	assert.Equal(t, 1, plays[2].WatchOrder)
}

func TestPlaces(t *testing.T) {
	track := testTrack(t)

	cinema, err := track.AddPlace("Odeon", true)
	require.NoError(t, err)
	_, err = track.AddPlace("Home", false)
	require.NoError(t, err)

	places, err := track.Places()
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Home", places[0].Name)
	assert.Equal(t, "Odeon", places[1].Name)

	err = track.UpdatePlace(cinema.ID, "Odeon Leicester Square", true)
	require.NoError(t, err)
	place, err := track.LookupPlace("Odeon Leicester Square")
	require.NoError(t, err)
	assert.True(t, place.Cinema)

	_, err = track.LookupPlace("Odeon")
	assert.ErrorIs(t, err, ErrPlaceNotFound)
	err = track.UpdatePlace(cinema.ID+99, "x", false)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestDeletePlaceKeepsPlays(t *testing.T) {
	track := testTrack(t)
	m := testMovie(t, track, 550, "Fight Club", 139)
	place, err := track.AddPlace("Odeon", true)
	require.NoError(t, err)
	p, err := track.AddPlay(m.ID, "2024-05-01", &place.ID, 0)
	require.NoError(t, err)

	err = track.DeletePlace(place.ID)
	require.NoError(t, err)

	plays, err := track.MoviePlays(m.ID)
	require.NoError(t, err)
	require.Len(t, plays, 1)
	assert.Equal(t, p.ID, plays[0].ID)
	assert.Equal(t, "2024-05-01", plays[0].Date)
	assert.Nil(t, plays[0].PlaceID)
	assert.Equal(t, "", plays[0].PlaceName)

	err = track.DeletePlace(place.ID)
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestDashboardStatsDistinctRuntime(t *testing.T) {
	track := testTrack(t)
	long := testMovie(t, track, 550, "Fight Club", 120)
	short := testMovie(t, track, 603, "The Matrix", 90)
	testMovie(t, track, 807, "Se7en", 127) // never played

	// three plays of one movie count its runtime once
	for _, d := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		_, err := track.AddPlay(long.ID, d, nil, 0)
		require.NoError(t, err)
	}
	_, err := track.AddPlay(short.ID, "2024-05-04", nil, 0)
	require.NoError(t, err)
	err = track.AddToWatchlist(short.ID)
	require.NoError(t, err)

	stats, err := track.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Plays)
	assert.Equal(t, int64(2), stats.UniqueMovies)
	assert.Equal(t, int64(1), stats.WatchlistCount)
	assert.Equal(t, int64(210), stats.RuntimeMinutes)
}

func TestTopPeople(t *testing.T) {
	track := testTrack(t)
	a := testPerson(t, track, 1, "Alice Allen")
	b := testPerson(t, track, 2, "Bob Banks")
	c := testPerson(t, track, 3, "Cara Cole")

	// b directs four movies, a three, c three; a sorts before c by name
	for i := 0; i < 4; i++ {
		m := testMovie(t, track, 100+i, "Movie", 100)
		credits := []Credit{{PersonID: b.ID, Role: RoleDirector, Rank: 0}}
		if i < 3 {
			credits = append(credits,
				Credit{PersonID: a.ID, Role: RoleDirector, Rank: 1},
				Credit{PersonID: c.ID, Role: RoleDirector, Rank: 2},
				Credit{PersonID: c.ID, Role: RoleActor, Rank: 3})
		}
		err := track.ReplaceCredits(m.ID, credits)
		require.NoError(t, err)
	}

	people, err := track.TopPeople(RoleDirector, 6)
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "Bob Banks", people[0].Name)
	assert.Equal(t, 4, people[0].Appearances)
	assert.Equal(t, "Alice Allen", people[1].Name)
	assert.Equal(t, "Cara Cole", people[2].Name)

	// acting credits rank separately
	actors, err := track.TopPeople(RoleActor, 6)
	require.NoError(t, err)
	require.Len(t, actors, 1)
	assert.Equal(t, "Cara Cole", actors[0].Name)
	assert.Equal(t, 3, actors[0].Appearances)
}

func TestTopPeopleTieBreak(t *testing.T) {
	track := testTrack(t)
	few := testPerson(t, track, 1, "Alice Allen")
	many := testPerson(t, track, 2, "Zed Young")

	// equal appearances; the spread over more distinct movies wins even
	// though the loser sorts first by name
	movies := make([]*Movie, 4)
	for i := range movies {
		movies[i] = testMovie(t, track, 200+i, "Movie", 100)
	}
	for i, m := range movies {
		credits := []Credit{{PersonID: many.ID, Role: RoleProducer, Rank: 0}}
		if i < 2 {
			credits = append(credits,
				Credit{PersonID: few.ID, Role: RoleProducer, Rank: 1},
				Credit{PersonID: few.ID, Role: RoleProducer, Rank: 2})
		}
		err := track.ReplaceCredits(m.ID, credits)
		require.NoError(t, err)
	}

	people, err := track.TopPeople(RoleProducer, 6)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Zed Young", people[0].Name)
	assert.Equal(t, 4, people[0].Appearances)
	assert.Equal(t, 4, people[0].Movies)
	assert.Equal(t, "Alice Allen", people[1].Name)
	assert.Equal(t, 4, people[1].Appearances)
	assert.Equal(t, 2, people[1].Movies)
}

func TestRecentlyPlayed(t *testing.T) {
	track := testTrack(t)
	first := testMovie(t, track, 550, "Fight Club", 139)
	second := testMovie(t, track, 603, "The Matrix", 136)

	_, err := track.AddPlay(first.ID, "2024-01-01", nil, 0)
	require.NoError(t, err)
	_, err = track.AddPlay(second.ID, "2024-02-01", nil, 0)
	require.NoError(t, err)
	_, err = track.AddPlay(first.ID, "2024-03-01", nil, 0)
	require.NoError(t, err)

	recent, err := track.RecentlyPlayed(6)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Fight Club", recent[0].Title)
	assert.Equal(t, "2024-03-01", recent[0].LastWatched)
	assert.Equal(t, "The Matrix", recent[1].Title)
}

func TestTMIDSets(t *testing.T) {
	track := testTrack(t)
	played := testMovie(t, track, 550, "Fight Club", 139)
	listed := testMovie(t, track, 603, "The Matrix", 136)

	_, err := track.AddPlay(played.ID, "2024-05-01", nil, 0)
	require.NoError(t, err)
	err = track.AddToWatchlist(listed.ID)
	require.NoError(t, err)

	watched, err := track.WatchedTMIDs()
	require.NoError(t, err)
	assert.True(t, watched[550])
	assert.False(t, watched[603])

	wanted, err := track.WatchlistTMIDs()
	require.NoError(t, err)
	assert.True(t, wanted[603])
	assert.False(t, wanted[550])
}
