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
	"errors"
	"sort"
	"strings"

	"github.com/memento-dev/memento/lib/log"
	"github.com/memento-dev/memento/lib/tmdb"
)

// SyncMovie imports or refreshes one movie from TMDB: detail and credits
// are fetched, the movie and its people upserted, the credit set
// replaced, and the IMDb rating refreshed best-effort. Returns the
// stored movie.
func (t *Track) SyncMovie(tmid int) (*Movie, error) {
	detail, err := t.tmdb.MovieDetail(tmid)
	if err != nil {
		return nil, err
	}
	movie, err := t.ResolveMovie(detail)
	if err != nil {
		return nil, err
	}

	credits, err := t.tmdb.MovieCredits(tmid)
	if err != nil {
		return nil, err
	}
	list, err := t.creditList(credits)
	if err != nil {
		return nil, err
	}
	err = t.ReplaceCredits(movie.ID, list)
	if err != nil {
		return nil, err
	}

	t.syncRating(movie)
	t.syncImages(movie)

	return t.LookupMovie(movie.ID)
}

// SyncPerson refreshes one person from TMDB.
func (t *Track) SyncPerson(peid int) (*Person, error) {
	detail, err := t.tmdb.PersonDetail(peid)
	if err != nil {
		return nil, err
	}
	return t.ResolvePerson(detail)
}

// SyncAll refreshes every tracked movie item by item. Individual
// failures are logged and counted; the loop always runs to the end.
func (t *Track) SyncAll() (synced, failed int) {
	movies, err := t.Movies()
	if err != nil {
		log.Printf("sync: %s\n", err)
		return
	}
	for _, m := range movies {
		_, err := t.SyncMovie(int(m.TMID))
		if err != nil {
			log.Printf("sync %s: %s\n", m.Title, err)
			failed++
			continue
		}
		synced++
	}
	return
}

// creditRoles is the order credit groups are emitted in; cast always
// comes after crew, matching the original TMDB billing presentation.
var creditRoles = []string{
	RoleDirector,
	RoleProducer,
	RoleCinematographer,
	RoleComposer,
}

// creditList maps TMDB credits to local ones, resolving each person on
// first sight. Crew jobs are filtered through Track.CrewJobs; producers
// and cast are capped by config.
func (t *Track) creditList(credits *tmdb.Credits) ([]Credit, error) {
	if credits == nil {
		return nil, nil
	}

	byRole := make(map[string][]tmdb.Crew)
	for _, o := range credits.Crew {
		// CrewJobs is keyed lowercase, the form viper serves map keys in
		role, ok := t.config.Track.CrewJobs[strings.ToLower(o.Job)]
		if !ok {
			// ignore other jobs
			continue
		}
		byRole[role] = append(byRole[role], o)
	}

	var list []Credit
	rank := 0
	for _, role := range creditRoles {
		crew := byRole[role]
		if role == RoleProducer && len(crew) > t.config.Track.ProducerLimit {
			crew = crew[:t.config.Track.ProducerLimit]
		}
		for _, o := range crew {
			p, err := t.creditPerson(o.ID)
			if err != nil {
				return nil, err
			}
			list = append(list, Credit{
				PersonID: p.ID,
				Role:     role,
				Rank:     rank,
			})
			rank++
		}
	}

	cast := credits.Cast
	sort.Slice(cast, func(i, j int) bool {
		// sort by original billing order
		return cast[i].Order < cast[j].Order
	})
	if len(cast) > t.config.Track.CastLimit {
		cast = cast[:t.config.Track.CastLimit]
	}
	for _, o := range cast {
		p, err := t.creditPerson(o.ID)
		if err != nil {
			return nil, err
		}
		list = append(list, Credit{
			PersonID:  p.ID,
			Role:      RoleActor,
			Character: o.Character,
			Rank:      rank,
		})
		rank++
	}

	return list, nil
}

// creditPerson returns the local person for a TMDB id, fetching the
// person detail only the first time that person is seen.
func (t *Track) creditPerson(peid int) (*Person, error) {
	p, err := t.Person(int64(peid))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrPersonNotFound) {
		return nil, err
	}
	detail, err := t.tmdb.PersonDetail(peid)
	if err != nil {
		return nil, err
	}
	return t.ResolvePerson(detail)
}

// syncImages warms the shared disk cache with the movie poster so later
// detail views render without a network round trip. Failures only log.
func (t *Track) syncImages(m *Movie) {
	if m.PosterPath == "" {
		return
	}
	_, err := t.tmdb.FetchImage(tmdb.Poster(m.PosterPath))
	if err != nil {
		log.Printf("poster %s: %s\n", m.PosterPath, err)
	}
}

// syncRating refreshes the separately sourced IMDb rating. Scrape
// failures leave the stored rating unchanged.
func (t *Track) syncRating(m *Movie) {
	if m.IMID == "" {
		return
	}
	rating, err := t.imdb.LookupRating(m.IMID)
	if err != nil {
		log.Printf("imdb rating %s: %s\n", m.IMID, err)
		return
	}
	if rating == nil {
		return
	}
	value := float32(rating.Value)
	err = t.db.Model(m).Update("imdb_rating", value).Error
	if err != nil {
		log.Printf("imdb rating %s: %s\n", m.IMID, err)
	}
}
