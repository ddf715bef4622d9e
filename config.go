package main

import (
	"os"
	"path"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config collects everything the store, journal and renderer need. It is
// resolved once in main and passed down; nothing reads it globally.
type Config struct {
	DataFile    string `yaml:"data_file"`
	JournalFile string `yaml:"journal_file"`
	Currency    string `yaml:"currency"`
	Color       bool   `yaml:"color"`
}

func defaultConfig(confDir string) Config {
	return Config{
		DataFile:    path.Join(confDir, "data.json"),
		JournalFile: path.Join(confDir, "journal.db"),
		Currency:    "$",
		Color:       true,
	}
}

// loadConfig reads config.yaml from the conf directory if present. A missing
// file keeps the defaults; a malformed one is an error.
func loadConfig(confDir string) (Config, error) {
	c := defaultConfig(confDir)
	p := path.Join(confDir, "config.yaml")
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, errors.Wrapf(err, "read config at %v", p)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "unmarshal yaml config at %v", p)
	}
	return c, nil
}
