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
	"errors"
	"fmt"

	"github.com/memento-dev/memento/lib/date"
	"github.com/memento-dev/memento/lib/log"
	"github.com/memento-dev/memento/track"
	"github.com/spf13/cobra"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "list or change the watchlist",
	Long:  `Without flags the watchlist is printed, newest first.`,
	Run: func(cmd *cobra.Command, args []string) {
		watchlist()
	},
}

var watchlistAdd int
var watchlistRemove int

func watchlist() {
	t := openTrack()
	defer t.Close()

	switch {
	case watchlistAdd > 0:
		m := localMovie(t, watchlistAdd)
		log.CheckError(t.AddToWatchlist(m.ID))
		fmt.Printf("added %s\n", m.Title)
	case watchlistRemove > 0:
		m, err := t.Movie(int64(watchlistRemove))
		log.CheckError(err)
		log.CheckError(t.RemoveFromWatchlist(m.ID))
		fmt.Printf("removed %s\n", m.Title)
	default:
		movies, err := t.WatchlistMovies()
		log.CheckError(err)
		for _, m := range movies {
			fmt.Printf("%d %s (added %s)\n", m.TMID, m.Title,
				date.Format(m.AddedAt))
		}
	}
}

// localMovie returns the local row for a TMDB id, importing the movie
// first if it was never seen.
func localMovie(t *track.Track, tmid int) *track.Movie {
	m, err := t.Movie(int64(tmid))
	if errors.Is(err, track.ErrMovieNotFound) {
		m, err = t.SyncMovie(tmid)
	}
	log.CheckError(err)
	return m
}

func init() {
	watchlistCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	watchlistCmd.Flags().IntVarP(&watchlistAdd, "add", "a", 0, "add movie by TMDB id")
	watchlistCmd.Flags().IntVarP(&watchlistRemove, "remove", "r", 0, "remove movie by TMDB id")
	rootCmd.AddCommand(watchlistCmd)
}
