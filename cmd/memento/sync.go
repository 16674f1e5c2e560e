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
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "refresh tracked movies from TMDB",
	Long:  `Refresh every tracked movie, or one movie with --movie.`,
	Run: func(cmd *cobra.Command, args []string) {
		sync()
	},
}

var syncMovie int

func sync() {
	t := openTrack()
	defer t.Close()

	if syncMovie > 0 {
		m, err := t.SyncMovie(syncMovie)
		log.CheckError(err)
		fmt.Printf("synced %s\n", m.Title)
		return
	}

	synced, failed := t.SyncAll()
	fmt.Printf("synced %d, failed %d\n", synced, failed)
}

func init() {
	syncCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	syncCmd.Flags().IntVarP(&syncMovie, "movie", "m", 0, "TMDB movie id")
	rootCmd.AddCommand(syncCmd)
}
