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

package imdb

import (
	"testing"

	"github.com/memento-dev/memento/config"
)

func TestExtractRating(t *testing.T) {
	html := `<html><head>
	<script type="application/ld+json">
	{"@type":"Movie","name":"Fight Club",
	 "aggregateRating":{"@type":"AggregateRating",
	  "ratingValue":8.8,"ratingCount":2300000,"bestRating":10}}
	</script></head></html>`
	rating := ExtractRating(html)
	if rating == nil {
		t.Fatal("expected rating")
	}
	if rating.Value != 8.8 {
		t.Errorf("got %f", rating.Value)
	}
	if rating.Count != 2300000 {
		t.Errorf("got %d", rating.Count)
	}
	if rating.Best != 10 {
		t.Errorf("got %f", rating.Best)
	}
}

func TestExtractRatingGraph(t *testing.T) {
	html := `<script type='application/ld+json'>
	{"@context":"https://schema.org","@graph":[
	 {"@type":"BreadcrumbList"},
	 {"@type":"Movie","aggregateRating":
	  {"ratingValue":"7.4","ratingCount":"1,234,567"}}]}
	</script>`
	rating := ExtractRating(html)
	if rating == nil {
		t.Fatal("expected rating")
	}
	if rating.Value != 7.4 {
		t.Errorf("got %f", rating.Value)
	}
	if rating.Count != 1234567 {
		t.Errorf("got %d", rating.Count)
	}
	// bestRating omitted, assume the 10 scale
	if rating.Best != 10 {
		t.Errorf("got %f", rating.Best)
	}
}

func TestExtractRatingNone(t *testing.T) {
	pages := []string{
		"",
		"<html><body>no scripts here</body></html>",
		`<script type="application/ld+json">not json</script>`,
		`<script type="application/ld+json">{"@type":"Movie"}</script>`,
		`<script type="application/ld+json">
		 {"aggregateRating":{"ratingCount":100}}</script>`,
	}
	for i, html := range pages {
		if rating := ExtractRating(html); rating != nil {
			t.Errorf("page %d: expected no rating, got %v", i, rating)
		}
	}
}

func TestLookupRatingBadID(t *testing.T) {
	m := NewIMDB(&config.Config{})
	for _, imid := range []string{"", "550", "nm0000399", "tt", "tt0137523x"} {
		rating, err := m.LookupRating(imid)
		if err != nil {
			t.Errorf("%s: %s", imid, err)
		}
		if rating != nil {
			t.Errorf("%s: expected no rating", imid)
		}
	}
}
