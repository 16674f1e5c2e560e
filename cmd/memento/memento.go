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
	"os"

	"github.com/memento-dev/memento/config"
	"github.com/memento-dev/memento/lib/log"
	"github.com/memento-dev/memento/track"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "memento",
	Short: "Memento tracks your movie-watching history",
	Long:  `https://github.com/memento-dev/memento`,
}

var configFile string
var configPath string
var configName string

func getConfig() *config.Config {
	if configPath == "" {
		configPath = os.Getenv("MEMENTO_HOME")
	}
	if configName == "" {
		configName = os.Getenv("MEMENTO_CONFIG")
	}
	if configFile != "" {
		config.SetConfigFile(configFile)
	} else {
		if configPath == "" {
			configPath = "."
		}
		if configName == "" {
			configName = "memento"
		}
		config.AddConfigPath(configPath)
		config.SetConfigName(configName)
	}
	config, err := config.GetConfig()
	log.CheckError(err)
	return config
}

func openTrack() *track.Track {
	t := track.NewTrack(getConfig())
	err := t.Open()
	log.CheckError(err)
	return t
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
