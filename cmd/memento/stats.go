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
	"github.com/memento-dev/memento/track"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "memento stats",
	Long:  `Dashboard statistics: totals, top directors and top actors.`,
	Run: func(cmd *cobra.Command, args []string) {
		stats()
	},
}

func stats() {
	cfg := getConfig()
	t := track.NewTrack(cfg)
	err := t.Open()
	log.CheckError(err)
	defer t.Close()

	s, err := t.DashboardStats()
	log.CheckError(err)
	fmt.Printf("plays %d\n", s.Plays)
	fmt.Printf("unique movies %d\n", s.UniqueMovies)
	fmt.Printf("watchlist %d\n", s.WatchlistCount)
	fmt.Printf("watch time %s\n", formatRuntime(s.RuntimeMinutes))

	limit := cfg.Track.TopLimit
	topPeople(t, track.RoleDirector, limit)
	topPeople(t, track.RoleActor, limit)

	recent, err := t.RecentlyPlayed(limit)
	log.CheckError(err)
	for _, m := range recent {
		fmt.Printf("recent %s %s\n", m.LastWatched, m.Title)
	}
}

func topPeople(t *track.Track, role string, limit int) {
	people, err := t.TopPeople(role, limit)
	log.CheckError(err)
	for _, p := range people {
		fmt.Printf("%s %s - %d appearances, %d movies\n",
			role, p.Name, p.Appearances, p.Movies)
	}
}

func formatRuntime(minutes int64) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func init() {
	statsCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(statsCmd)
}
