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

package main

import (
	"fmt"

	"github.com/memento-dev/memento/lib/log"
	"github.com/memento-dev/memento/lib/str"
	"github.com/memento-dev/memento/lib/tmdb"
	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie [tmdb id]",
	Short: "import a movie and show its details",
	Long:  `Fetch a movie from TMDB by id, store it locally and print it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		movie(str.Atoi(args[0]))
	},
}

func movie(tmid int) {
	t := openTrack()
	defer t.Close()

	m, err := t.SyncMovie(tmid)
	log.CheckError(err)

	fmt.Printf("%s", m.Title)
	if m.Date != "" {
		fmt.Printf(" (%s)", m.Date)
	}
	fmt.Println()
	if m.Tagline != "" {
		fmt.Println(m.Tagline)
	}
	if m.Runtime > 0 {
		fmt.Printf("runtime %d min\n", m.Runtime)
	}
	fmt.Printf("tmdb %.1f (%d votes)\n", m.VoteAverage, m.VoteCount)
	if m.ImdbRating != nil {
		fmt.Printf("imdb %.1f\n", *m.ImdbRating)
	}
	if m.Overview != "" {
		fmt.Println(str.TruncateText(m.Overview, 200))
	}

	credits, err := t.MovieCredits(m.ID)
	log.CheckError(err)
	for _, c := range credits {
		if c.Character != "" {
			fmt.Printf("%s: %s as %s\n", c.Role, c.Name, c.Character)
		} else {
			fmt.Printf("%s: %s\n", c.Role, c.Name)
		}
	}

	plays, err := t.MoviePlays(m.ID)
	log.CheckError(err)
	for _, p := range plays {
		if p.PlaceName != "" {
			fmt.Printf("watched %s #%d at %s\n", p.Date, p.WatchOrder, p.PlaceName)
		} else {
			fmt.Printf("watched %s #%d\n", p.Date, p.WatchOrder)
		}
	}

	fmt.Println(tmdb.MovieURL(m.TMID))
	if m.IMID != "" {
		fmt.Println(tmdb.IMDbURL(m.IMID))
		fmt.Println(tmdb.LetterboxdURL(m.IMID))
	}
}

func init() {
	movieCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(movieCmd)
}
