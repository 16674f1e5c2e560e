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

package tmdb

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/memento-dev/memento/config"
	"github.com/memento-dev/memento/lib/client"
)

var ErrMissingKey = errors.New("TMDB API key not configured")

type TMDB struct {
	config *config.Config
	client *client.Client
}

func NewTMDB(config *config.Config) *TMDB {
	return &TMDB{
		config: config,
		client: client.NewClient(&config.Client),
	}
}

type Movie struct {
	ID               int     `json:"id"` // unique movie ID
	IMDB_ID          string  `json:"imdb_id"`
	Adult            bool    `json:"adult"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float32 `json:"popularity"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Tagline          string  `json:"tagline"`
	Title            string  `json:"title"`
	VoteAverage      float32 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Budget           int64   `json:"budget"`
	Revenue          int64   `json:"revenue"`
	Runtime          int     `json:"runtime"`
}

type Cast struct {
	ID           int    `json:"id"` // unique person ID
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	ProfilePath  string `json:"profile_path"`
	Character    string `json:"character"`
	Order        int    `json:"order"`
}

type Crew struct {
	ID           int    `json:"id"` // unique person ID
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	ProfilePath  string `json:"profile_path"`
	Department   string `json:"department"`
	Job          string `json:"job"`
}

type Credits struct {
	ID   int    `json:"id"` // unique movie ID
	Cast []Cast `json:"cast"`
	Crew []Crew `json:"crew"`
}

type Person struct {
	ID          int    `json:"id"` // unique person ID
	IMDB_ID     string `json:"imdb_id"`
	Name        string `json:"name"`
	ProfilePath string `json:"profile_path"`
	Birthday    string `json:"birthday"`
	Deathday    string `json:"deathday"`
	Biography   string `json:"biography"`
	Birthplace  string `json:"place_of_birth"`
}

type MovieResult struct {
	ID               int     `json:"id"`
	Adult            bool    `json:"adult"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float32 `json:"popularity"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Title            string  `json:"title"`
	VoteAverage      float32 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

type moviePage struct {
	Page         int           `json:"page"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
	Results      []MovieResult `json:"results"`
}

const (
	endpoint = "api.themoviedb.org"

	imageBaseURL = "https://image.tmdb.org/t/p/"
	PosterW500   = "w500"
	ProfileW185  = "w185"
)

func (m *TMDB) key() (string, error) {
	if m.config.TMDB.Key == "" {
		return "", ErrMissingKey
	}
	return m.config.TMDB.Key, nil
}

func (m *TMDB) moviePage(q string, page int) (*moviePage, error) {
	key, err := m.key()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf(
		"https://%s/3/search/movie?api_key=%s&language=%s&include_adult=false&query=%s&page=%d",
		endpoint, key, m.config.TMDB.Language, url.QueryEscape(q), page)
	var result moviePage
	err = m.client.GetJson(url, &result)
	return &result, err
}

func (m *TMDB) MovieSearch(q string) ([]MovieResult, error) {
	// TODO only supports one page right now
	page, err := m.moviePage(q, 1)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (m *TMDB) MovieDetail(tmid int) (*Movie, error) {
	key, err := m.key()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf(
		"https://%s/3/movie/%d?api_key=%s&language=%s",
		endpoint, tmid, key, m.config.TMDB.Language)
	var result Movie
	err = m.client.GetJson(url, &result)
	return &result, err
}

func (m *TMDB) MovieCredits(tmid int) (*Credits, error) {
	key, err := m.key()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf(
		"https://%s/3/movie/%d/credits?api_key=%s&language=%s",
		endpoint, tmid, key, m.config.TMDB.Language)
	var result Credits
	err = m.client.GetJson(url, &result)
	return &result, err
}

func (m *TMDB) PersonDetail(peid int) (*Person, error) {
	key, err := m.key()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf(
		"https://%s/3/person/%d?api_key=%s",
		endpoint, peid, key)
	var result Person
	err = m.client.GetJson(url, &result)
	return &result, err
}

// FetchImage pulls image bytes through the caching client so posters and
// profiles end up in the same disk cache as API payloads.
func (m *TMDB) FetchImage(url string) ([]byte, error) {
	if url == "" {
		return nil, nil
	}
	_, body, err := m.client.Get(url)
	return body, err
}

func imageURL(size, path string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}

// Poster returns the w500 poster URL for a TMDB poster path, or empty.
func Poster(posterPath string) string {
	return imageURL(PosterW500, posterPath)
}

// Profile returns the w185 profile URL for a TMDB profile path, or empty.
func Profile(profilePath string) string {
	return imageURL(ProfileW185, profilePath)
}

func MovieURL(tmid int64) string {
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", tmid)
}

func IMDbURL(imid string) string {
	if imid == "" {
		return ""
	}
	return fmt.Sprintf("https://www.imdb.com/title/%s/", imid)
}

// LetterboxdURL builds the Letterboxd film page from an IMDb id; Letterboxd
// keys films by the IMDb number without the tt prefix.
func LetterboxdURL(imid string) string {
	if imid == "" {
		return ""
	}
	return fmt.Sprintf("https://letterboxd.com/imdb/%s/", strings.TrimPrefix(imid, "tt"))
}
