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

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "manage watch places",
	Long:  `Places are named locations plays can reference, e.g. a cinema.`,
	Run: func(cmd *cobra.Command, args []string) {
		place()
	},
}

var placeAdd string
var placeCinema bool
var placeUpdate uint
var placeName string
var placeDelete uint

func place() {
	t := openTrack()
	defer t.Close()

	switch {
	case placeAdd != "":
		p, err := t.AddPlace(placeAdd, placeCinema)
		log.CheckError(err)
		fmt.Printf("added %s (%d)\n", p.Name, p.ID)
	case placeUpdate > 0:
		log.CheckError(t.UpdatePlace(placeUpdate, placeName, placeCinema))
	case placeDelete > 0:
		log.CheckError(t.DeletePlace(placeDelete))
	default:
		places, err := t.Places()
		log.CheckError(err)
		for _, p := range places {
			if p.Cinema {
				fmt.Printf("%d %s (cinema)\n", p.ID, p.Name)
			} else {
				fmt.Printf("%d %s\n", p.ID, p.Name)
			}
		}
	}
}

func init() {
	placeCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")
	placeCmd.Flags().StringVarP(&placeAdd, "add", "a", "", "add place by name")
	placeCmd.Flags().BoolVarP(&placeCinema, "cinema", "t", false, "place is a cinema")
	placeCmd.Flags().UintVarP(&placeUpdate, "update", "u", 0, "update place by id")
	placeCmd.Flags().StringVarP(&placeName, "name", "n", "", "new place name")
	placeCmd.Flags().UintVarP(&placeDelete, "delete", "x", 0, "delete place by id")
	rootCmd.AddCommand(placeCmd)
}
