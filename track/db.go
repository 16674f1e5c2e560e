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
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/memento-dev/memento/lib/date"
	"github.com/memento-dev/memento/lib/str"
	"github.com/memento-dev/memento/lib/tmdb"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func (t *Track) openDB() (err error) {
	var glog logger.Interface
	if t.config.Track.DB.LogMode == false {
		glog = logger.Discard
	} else {
		glog = logger.Default
	}
	cfg := &gorm.Config{
		Logger: glog,
	}

	if t.config.Track.DB.Driver == "sqlite3" {
		source := t.config.Track.DB.Source
		if dir := filepath.Dir(source); dir != "." {
			if err = os.MkdirAll(dir, 0755); err != nil {
				return
			}
		}
		t.db, err = gorm.Open(sqlite.Open(source), cfg)
	} else {
		err = errors.New("driver not supported")
	}

	if err != nil {
		return
	}

	// create-if-absent for every table; safe on each startup
	err = t.db.AutoMigrate(&Movie{}, &Person{}, &Credit{},
		&WatchlistEntry{}, &Place{}, &Play{})
	return
}

func (t *Track) closeDB() {
	conn, err := t.db.DB()
	if err != nil {
		return
	}
	conn.Close()
}

// movieColumns are the mutable fields refreshed on re-import. created_at
// and imdb_rating are deliberately absent: the first never changes after
// insert, the second has its own source.
var movieColumns = []string{
	"im_id", "title", "sort_title", "poster_path", "tagline", "overview",
	"original_language", "runtime", "date", "vote_average", "vote_count",
	"revenue", "updated_at",
}

// ResolveMovie upserts a TMDB movie record keyed on its TMDB id and
// returns the stored row. Re-importing the same id updates the existing
// row in place.
func (t *Track) ResolveMovie(detail *tmdb.Movie) (*Movie, error) {
	if detail == nil || detail.ID == 0 {
		return nil, ErrMissingTMID
	}

	title := detail.Title
	if title == "" {
		title = detail.OriginalTitle
	}
	if title == "" {
		title = "Untitled"
	}

	m := Movie{
		TMID:             int64(detail.ID),
		IMID:             detail.IMDB_ID,
		Title:            title,
		SortTitle:        str.SortTitle(title),
		PosterPath:       detail.PosterPath,
		Tagline:          detail.Tagline,
		Overview:         detail.Overview,
		OriginalLanguage: detail.OriginalLanguage,
		Runtime:          detail.Runtime,
		Date:             detail.ReleaseDate,
		VoteAverage:      detail.VoteAverage,
		VoteCount:        detail.VoteCount,
		Revenue:          detail.Revenue,
	}

	err := t.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tm_id"}},
		DoUpdates: clause.AssignmentColumns(movieColumns),
	}).Create(&m).Error
	if err != nil {
		return nil, err
	}

	movie, err := t.Movie(m.TMID)
	if errors.Is(err, ErrMovieNotFound) {
		return nil, ErrAfterUpsert
	}
	return movie, err
}

var personColumns = []string{
	"name", "profile_path", "bio", "birthday", "birthplace", "deathday",
	"updated_at",
}

// ResolvePerson upserts a TMDB person record keyed on its TMDB person id.
func (t *Track) ResolvePerson(detail *tmdb.Person) (*Person, error) {
	if detail == nil || detail.ID == 0 {
		return nil, ErrMissingPEID
	}

	p := Person{
		PEID:        int64(detail.ID),
		Name:        detail.Name,
		ProfilePath: detail.ProfilePath,
		Bio:         detail.Biography,
		Birthday:    detail.Birthday,
		Birthplace:  detail.Birthplace,
		Deathday:    detail.Deathday,
	}

	err := t.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pe_id"}},
		DoUpdates: clause.AssignmentColumns(personColumns),
	}).Create(&p).Error
	if err != nil {
		return nil, err
	}

	person, err := t.Person(p.PEID)
	if errors.Is(err, ErrPersonNotFound) {
		return nil, ErrAfterUpsert
	}
	return person, err
}

// ReplaceCredits swaps the full credit set for a movie in one
// transaction. An empty list is a refresh that produced no data and
// leaves the stored credits untouched.
func (t *Track) ReplaceCredits(movieID uint, credits []Credit) error {
	if len(credits) == 0 {
		return nil
	}
	return t.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("movie_id = ?", movieID).Delete(&Credit{}).Error
		if err != nil {
			return err
		}
		for i := range credits {
			credits[i].ID = 0
			credits[i].MovieID = movieID
		}
		return tx.Create(&credits).Error
	})
}

func (t *Track) Movie(tmid int64) (*Movie, error) {
	var movie Movie
	err := t.db.Where("tm_id = ?", tmid).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMovieNotFound
	}
	return &movie, err
}

func (t *Track) LookupMovie(id uint) (*Movie, error) {
	var movie Movie
	err := t.db.First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMovieNotFound
	}
	return &movie, err
}

func (t *Track) Person(peid int64) (*Person, error) {
	var person Person
	err := t.db.Where("pe_id = ?", peid).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPersonNotFound
	}
	return &person, err
}

func (t *Track) LookupPerson(id uint) (*Person, error) {
	var person Person
	err := t.db.First(&person, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPersonNotFound
	}
	return &person, err
}

func (t *Track) Movies() ([]Movie, error) {
	var movies []Movie
	err := t.db.Order("sort_title").Find(&movies).Error
	return movies, err
}

func (t *Track) MovieCount() (int64, error) {
	var count int64
	err := t.db.Model(&Movie{}).Count(&count).Error
	return count, err
}

func (t *Track) PersonCount() (int64, error) {
	var count int64
	err := t.db.Model(&Person{}).Count(&count).Error
	return count, err
}

// MovieCredits returns a movie's credits with their people, grouped by
// role and ordered by original billing.
func (t *Track) MovieCredits(movieID uint) ([]CreditDetail, error) {
	var credits []CreditDetail
	err := t.db.Model(&Credit{}).
		Select(`credits.id, credits.role, credits.character, credits.rank,
			credits.person_id, people.pe_id, people.name, people.profile_path`).
		Joins("inner join people on people.id = credits.person_id").
		Where("credits.movie_id = ?", movieID).
		Order("credits.role, credits.rank").
		Scan(&credits).Error
	return credits, err
}

// PersonMovies returns the distinct movies a person is credited on,
// newest release first.
func (t *Track) PersonMovies(personID uint) ([]Movie, error) {
	var movies []Movie
	err := t.db.
		Where("movies.id in (select movie_id from credits where person_id = ?)", personID).
		Order("movies.date desc").
		Find(&movies).Error
	return movies, err
}

func (t *Track) existsMovie(tx *gorm.DB, movieID uint) error {
	var count int64
	err := tx.Model(&Movie{}).Where("id = ?", movieID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// AddToWatchlist inserts a watchlist row only if none exists; adding the
// same movie twice is a no-op.
func (t *Track) AddToWatchlist(movieID uint) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		if err := t.existsMovie(tx, movieID); err != nil {
			return err
		}
		var count int64
		err := tx.Model(&WatchlistEntry{}).
			Where("movie_id = ?", movieID).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(&WatchlistEntry{MovieID: movieID}).Error
	})
}

func (t *Track) RemoveFromWatchlist(movieID uint) error {
	return t.db.Where("movie_id = ?", movieID).Delete(&WatchlistEntry{}).Error
}

func (t *Track) InWatchlist(movieID uint) (bool, error) {
	var count int64
	err := t.db.Model(&WatchlistEntry{}).
		Where("movie_id = ?", movieID).Count(&count).Error
	return count > 0, err
}

func (t *Track) WatchlistCount() (int64, error) {
	var count int64
	err := t.db.Model(&WatchlistEntry{}).Count(&count).Error
	return count, err
}

func (t *Track) WatchlistMovies() ([]WatchlistMovie, error) {
	var movies []WatchlistMovie
	err := t.db.Model(&WatchlistEntry{}).
		Select(`movies.id as movie_id, movies.tm_id, movies.title,
			movies.poster_path, movies.tagline, movies.date, movies.runtime,
			movies.vote_average, watchlist.created_at as added_at`).
		Joins("inner join movies on movies.id = watchlist.movie_id").
		Order("watchlist.created_at desc").
		Scan(&movies).Error
	return movies, err
}

// AddPlay records a viewing event. With order <= 0 the watch order is one
// more than the current maximum among plays sharing the identical date
// string, defaulting to 1; the computation and insert share a
// transaction.
func (t *Track) AddPlay(movieID uint, watched string, placeID *uint, order int) (*Play, error) {
	if !date.ValidDate(watched) {
		return nil, ErrInvalidDate
	}
	p := Play{
		MovieID:    movieID,
		Date:       watched,
		WatchOrder: order,
		PlaceID:    placeID,
	}
	err := t.db.Transaction(func(tx *gorm.DB) error {
		if err := t.existsMovie(tx, movieID); err != nil {
			return err
		}
		if p.WatchOrder <= 0 {
			var max sql.NullInt64
			row := tx.Model(&Play{}).
				Select("max(watch_order)").
				Where("date = ?", watched).Row()
			if err := row.Scan(&max); err != nil {
				return err
			}
			p.WatchOrder = int(max.Int64) + 1
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *Track) UpdatePlay(playID uint, watched string, placeID *uint, order int) error {
	if !date.ValidDate(watched) {
		return ErrInvalidDate
	}
	if order <= 0 {
		order = 1
	}
	result := t.db.Model(&Play{}).Where("id = ?", playID).
		Updates(map[string]interface{}{
			"date":        watched,
			"place_id":    placeID,
			"watch_order": order,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayNotFound
	}
	return nil
}

func (t *Track) DeletePlay(playID uint) error {
	result := t.db.Where("id = ?", playID).Delete(&Play{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayNotFound
	}
	return nil
}

const playDetailSelect = `plays.id, plays.movie_id, movies.tm_id,
	movies.title, movies.poster_path, plays.date, plays.watch_order,
	plays.place_id, coalesce(places.name, '') as place_name,
	coalesce(places.cinema, 0) as cinema`

// MoviePlays lists a movie's plays with place details; plays without a
// place still appear.
func (t *Track) MoviePlays(movieID uint) ([]PlayDetail, error) {
	var plays []PlayDetail
	err := t.db.Model(&Play{}).
		Select(playDetailSelect).
		Joins("inner join movies on movies.id = plays.movie_id").
		Joins("left join places on places.id = plays.place_id").
		Where("plays.movie_id = ?", movieID).
		Order("plays.date desc, plays.watch_order desc").
		Scan(&plays).Error
	return plays, err
}

func (t *Track) Plays() ([]PlayDetail, error) {
	var plays []PlayDetail
	err := t.db.Model(&Play{}).
		Select(playDetailSelect).
		Joins("inner join movies on movies.id = plays.movie_id").
		Joins("left join places on places.id = plays.place_id").
		Order("plays.date desc, plays.watch_order desc").
		Scan(&plays).Error
	return plays, err
}

func (t *Track) Places() ([]Place, error) {
	var places []Place
	err := t.db.Order("name").Find(&places).Error
	return places, err
}

func (t *Track) AddPlace(name string, cinema bool) (*Place, error) {
	p := Place{Name: name, Cinema: cinema}
	err := t.db.Create(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *Track) LookupPlace(name string) (*Place, error) {
	var place Place
	err := t.db.Where("name = ?", name).First(&place).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlaceNotFound
	}
	return &place, err
}

func (t *Track) UpdatePlace(placeID uint, name string, cinema bool) error {
	result := t.db.Model(&Place{}).Where("id = ?", placeID).
		Updates(map[string]interface{}{
			"name":   name,
			"cinema": cinema,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlaceNotFound
	}
	return nil
}

// DeletePlace removes a place; plays that referenced it keep their
// dates and lose only the place.
func (t *Track) DeletePlace(placeID uint) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Play{}).Where("place_id = ?", placeID).
			Update("place_id", nil).Error
		if err != nil {
			return err
		}
		result := tx.Where("id = ?", placeID).Delete(&Place{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPlaceNotFound
		}
		return nil
	})
}

func (t *Track) DashboardStats() (Stats, error) {
	var stats Stats
	err := t.db.Raw(`select
		(select count(*) from plays) as plays,
		(select count(distinct movie_id) from plays) as unique_movies,
		(select count(*) from watchlist) as watchlist_count,
		(select coalesce(sum(runtime), 0) from movies
			where id in (select distinct movie_id from plays)) as runtime_minutes`).
		Scan(&stats).Error
	return stats, err
}

// TopPeople ranks people within one role by appearance count, breaking
// ties by distinct-movie count and then name.
func (t *Track) TopPeople(role string, limit int) ([]PersonStats, error) {
	var people []PersonStats
	err := t.db.Raw(`select people.id as person_id, people.pe_id,
		people.name, people.profile_path, credits.role,
		count(credits.id) as appearances,
		count(distinct credits.movie_id) as movies
		from credits
		inner join people on people.id = credits.person_id
		where credits.role = ?
		group by people.id
		order by appearances desc, movies desc, people.name
		limit ?`, role, limit).
		Scan(&people).Error
	return people, err
}

// RecentlyPlayed returns the most recently watched distinct movies, each
// with its latest watch date.
func (t *Track) RecentlyPlayed(limit int) ([]RecentMovie, error) {
	var movies []RecentMovie
	err := t.db.Raw(`select movies.id as movie_id, movies.tm_id,
		movies.title, movies.poster_path,
		max(plays.date) as last_watched
		from plays
		inner join movies on movies.id = plays.movie_id
		group by movies.id
		order by last_watched desc
		limit ?`, limit).
		Scan(&movies).Error
	return movies, err
}

// WatchedTMIDs is the set of TMDB ids with at least one play, used to
// badge a person's filmography.
func (t *Track) WatchedTMIDs() (map[int64]bool, error) {
	return t.tmidSet(`select distinct movies.tm_id from plays
		inner join movies on movies.id = plays.movie_id`)
}

// WatchlistTMIDs is the set of TMDB ids currently on the watchlist.
func (t *Track) WatchlistTMIDs() (map[int64]bool, error) {
	return t.tmidSet(`select distinct movies.tm_id from watchlist
		inner join movies on movies.id = watchlist.movie_id`)
}

func (t *Track) tmidSet(query string) (map[int64]bool, error) {
	var ids []int64
	err := t.db.Raw(query).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool)
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
