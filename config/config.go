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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/memento-dev/memento"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver  string
	Source  string
	LogMode bool
}

type ClientConfig struct {
	CacheDir  string
	MaxAge    time.Duration
	UseCache  bool
	UserAgent string
}

type TMDBAPIConfig struct {
	Key      string
	Language string
}

type IMDBConfig struct {
	UserAgent string
}

type TrackConfig struct {
	DB            DatabaseConfig
	CastLimit     int
	ProducerLimit int
	CrewJobs      map[string]string
	RecentLimit   int
	TopLimit      int
}

type Config struct {
	Client  ClientConfig
	DataDir string
	IMDB    IMDBConfig
	TMDB    TMDBAPIConfig
	Track   TrackConfig
}

func configDefaults(v *viper.Viper) {
	v.SetDefault("Client.CacheDir", ".httpcache")
	v.SetDefault("Client.MaxAge", "720h") // 30 days in hours
	v.SetDefault("Client.UseCache", "true")
	v.SetDefault("Client.UserAgent", userAgent())

	v.SetDefault("DataDir", ".")

	v.SetDefault("IMDB.UserAgent",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")

	v.SetDefault("TMDB.Key", "")
	v.SetDefault("TMDB.Language", "en-US")

	v.SetDefault("Track.DB.Driver", "sqlite3")
	v.SetDefault("Track.DB.Source", "memento.db")
	v.SetDefault("Track.DB.LogMode", "false")
	v.SetDefault("Track.CastLimit", "10")
	v.SetDefault("Track.ProducerLimit", "5")
	// viper lowercases map keys; lookups normalize the TMDB job first
	v.SetDefault("Track.CrewJobs", map[string]string{
		"director":                "director",
		"producer":                "producer",
		"director of photography": "cinematographer",
		"original music composer": "composer",
	})
	v.SetDefault("Track.RecentLimit", "6")
	v.SetDefault("Track.TopLimit", "6")
}

func userAgent() string {
	return memento.AppName + "/" + memento.Version + " ( " + memento.Contact + " ) "
}

func readConfig(v *viper.Viper) (*Config, error) {
	var config Config
	var pathRegexp = regexp.MustCompile(`(file|dir|source)$`)
	err := v.ReadInConfig()
	dir := filepath.Dir(v.ConfigFileUsed())
	for _, k := range v.AllKeys() {
		if pathRegexp.MatchString(k) {
			val := v.Get(k)
			if strings.HasPrefix(val.(string), "/") == false {
				val = fmt.Sprintf("%s/%s", dir, val.(string))
				v.Set(k, val)
			}
		}
	}
	if err == nil {
		err = v.Unmarshal(&config)
	}
	return &config, err
}

func TestConfig() (*Config, error) {
	testDir := os.Getenv("TEST_CONFIG")
	if testDir == "" {
		return nil, errors.New("missing test config")
	}
	v := viper.New()
	configDefaults(v)
	v.SetConfigFile(filepath.Join(testDir, "test.yaml"))
	v.SetDefault("Track.DB.Source", filepath.Join(testDir, "memento.db"))
	return readConfig(v)
}

var configFile, configPath, configName string

func SetConfigFile(path string) {
	configFile = path
}

func AddConfigPath(path string) {
	configPath = path
}

func SetConfigName(name string) {
	configName = name
}

func GetConfig() (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName != "" {
		v.SetConfigName(configName)
	}
	configDefaults(v)
	return readConfig(v)
}

func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	configDefaults(v)
	return readConfig(v)
}
