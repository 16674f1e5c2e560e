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
	"time"

	"github.com/memento-dev/memento/lib/date"
	"github.com/memento-dev/memento/lib/log"
	"github.com/memento-dev/memento/track"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "record or delete a play",
	Long:  `Record a viewing event for a movie, by TMDB id. Defaults to today.`,
	Run: func(cmd *cobra.Command, args []string) {
		play()
	},
}

var playsCmd = &cobra.Command{
	Use:   "plays",
	Short: "list plays",
	Run: func(cmd *cobra.Command, args []string) {
		plays()
	},
}

var playMovie int
var playDate string
var playPlace string
var playOrder int
var playDelete uint

func play() {
	t := openTrack()
	defer t.Close()

	if playDelete > 0 {
		log.CheckError(t.DeletePlay(playDelete))
		fmt.Printf("deleted play %d\n", playDelete)
		return
	}

	if playMovie == 0 {
		log.Fatalln("--movie is required")
	}
	m := localMovie(t, playMovie)

	if playDate == "" {
		playDate = time.Now().Format(date.ISO)
	}

	var placeID *uint
	if playPlace != "" {
		place, err := t.LookupPlace(playPlace)
		log.CheckError(err)
		placeID = &place.ID
	}

	p, err := t.AddPlay(m.ID, playDate, placeID, playOrder)
	log.CheckError(err)
	fmt.Printf("watched %s on %s #%d\n", m.Title, p.Date, p.WatchOrder)
}

func plays() {
	t := openTrack()
	defer t.Close()

	var list []track.PlayDetail
	var err error
	if playMovie > 0 {
		var m *track.Movie
		m, err = t.Movie(int64(playMovie))
		log.CheckError(err)
		list, err = t.MoviePlays(m.ID)
	} else {
		list, err = t.Plays()
	}
	log.CheckError(err)

	for _, p := range list {
		if p.PlaceName != "" {
			fmt.Printf("%d %s #%d %s at %s\n",
				p.ID, p.Date, p.WatchOrder, p.Title, p.PlaceName)
		} else {
			fmt.Printf("%d %s #%d %s\n", p.ID, p.Date, p.WatchOrder, p.Title)
		}
	}
}

func init() {
	playCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	playCmd.Flags().IntVarP(&playMovie, "movie", "m", 0, "TMDB movie id")
	playCmd.Flags().StringVarP(&playDate, "date", "d", "", "watch date (yyyy-mm-dd)")
	playCmd.Flags().StringVarP(&playPlace, "place", "p", "", "place name")
	playCmd.Flags().IntVarP(&playOrder, "order", "o", 0, "same-day watch order")
	playCmd.Flags().UintVarP(&playDelete, "delete", "x", 0, "delete play by id")
	playsCmd.Flags().IntVarP(&playMovie, "movie", "m", 0, "TMDB movie id")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(playsCmd)
}
