// Package config provides functionality for managing configuration options
// for the terminal client using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
)

// Options holds the configuration values for the client.
type Options struct {
	// ServerURL is the base URL of the backend API.
	ServerURL string

	// TokenFile is where the bearer token is persisted between runs.
	TokenFile string

	// Config is the path to the JSON config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.ServerURL, "s", "http://localhost:5000", "backend base URL")
	flag.StringVar(&options.TokenFile, "t", defaultTokenFile(), "path to the token file")
	flag.StringVar(&options.Config, "config", "", "path to config file")
	flag.StringVar(&options.Config, "c", "", "path to config file (shorthand)")
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "token.json"
	}
	return filepath.Join(home, ".loving-lunch", "token.json")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. Environment variables win over the config file,
// the config file wins over flag defaults.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverURL := os.Getenv("SERVER_URL"); serverURL != "" {
		options.ServerURL = serverURL
	}
	if tokenFile := os.Getenv("TOKEN_FILE"); tokenFile != "" {
		options.TokenFile = tokenFile
	}

	return options
}
