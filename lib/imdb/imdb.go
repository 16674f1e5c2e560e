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

// Package imdb extracts the aggregate rating a title page embeds as
// ld+json structured data. The page markup is treated as opaque; only the
// script payloads are inspected, and anything unparseable yields no
// rating rather than an error.
package imdb

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/memento-dev/memento/config"
	"github.com/memento-dev/memento/lib/client"
)

type IMDB struct {
	config *config.Config
	client *client.Client
}

func NewIMDB(config *config.Config) *IMDB {
	return &IMDB{
		config: config,
		client: client.NewClient(&config.Client),
	}
}

// Rating is the {value, count, best-scale} triple from aggregateRating.
type Rating struct {
	Value float64
	Count int
	Best  float64
}

var (
	titleRegexp  = regexp.MustCompile(`^tt\d+$`)
	scriptRegexp = regexp.MustCompile(
		`(?is)<script[^>]*type=["']application/ld\+json["'][^>]*>(.*?)</script>`)
)

// LookupRating fetches the title page for imid and returns its aggregate
// rating, or nil if the id is malformed or no rating could be extracted.
func (m *IMDB) LookupRating(imid string) (*Rating, error) {
	imid = strings.TrimSpace(imid)
	if !titleRegexp.MatchString(imid) {
		return nil, nil
	}

	url := fmt.Sprintf("https://www.imdb.com/title/%s/", imid)
	headers := map[string]string{
		"User-Agent":      m.config.IMDB.UserAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         "https://www.imdb.com/",
	}
	_, body, err := m.client.GetWith(headers, url)
	if err != nil {
		return nil, err
	}

	return ExtractRating(string(body)), nil
}

// ExtractRating scans html for ld+json script blocks and returns the first
// aggregate rating found.
func ExtractRating(html string) *Rating {
	for _, match := range scriptRegexp.FindAllStringSubmatch(html, -1) {
		text := strings.TrimSpace(match[1])
		if text == "" {
			continue
		}
		var node interface{}
		if err := json.Unmarshal([]byte(text), &node); err != nil {
			// malformed script blocks are skipped, not fatal
			continue
		}
		if rating := findAggregateRating(node); rating != nil {
			return rating
		}
	}
	return nil
}

func findAggregateRating(node interface{}) *Rating {
	switch n := node.(type) {
	case []interface{}:
		for _, item := range n {
			if rating := findAggregateRating(item); rating != nil {
				return rating
			}
		}
	case map[string]interface{}:
		if agg, ok := n["aggregateRating"].(map[string]interface{}); ok {
			if rating := ratingFrom(agg); rating != nil {
				return rating
			}
		}
		if graph, ok := n["@graph"].([]interface{}); ok {
			return findAggregateRating(graph)
		}
	}
	return nil
}

func ratingFrom(agg map[string]interface{}) *Rating {
	value, ok := toFloat(agg["ratingValue"])
	if !ok {
		return nil
	}
	rating := Rating{Value: value, Best: 10}
	if count, ok := toFloat(agg["ratingCount"]); ok {
		rating.Count = int(count)
	}
	if best, ok := toFloat(agg["bestRating"]); ok {
		rating.Best = best
	}
	return &rating
}

// toFloat accepts the number and string forms ld+json uses, tolerating
// comma grouping in counts like "1,234,567".
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(n, ",", ""), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
