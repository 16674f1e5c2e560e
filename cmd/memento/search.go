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
	"strings"

	"github.com/memento-dev/memento/lib/date"
	"github.com/memento-dev/memento/lib/log"
	"github.com/memento-dev/memento/track"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "search TMDB for movies",
	Long:  `Search the remote catalog by title. Use "memento movie" with an id to import.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		search(strings.Join(args, " "))
	},
}

func search(q string) {
	t := track.NewTrack(getConfig())
	results, err := t.Search(q)
	log.CheckError(err)
	for _, r := range results {
		year := date.Year(r.ReleaseDate)
		if year == "" {
			fmt.Printf("%d %s\n", r.ID, r.Title)
		} else {
			fmt.Printf("%d %s (%s)\n", r.ID, r.Title, year)
		}
	}
}

func init() {
	searchCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	rootCmd.AddCommand(searchCmd)
}
