//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads the editor settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigPathEnv overrides the default settings file location.
const ConfigPathEnv = "DJACARTA_CONFIG"

type Config struct {
	TabSize   int    `toml:"tabsize"`
	LogFile   string `toml:"log_file"`
	StatusBar bool   `toml:"status_bar"`
	Debug     bool   `toml:"debug"`
	// Warnings lists problems that did not prevent loading, such as unknown keys.
	Warnings []string `toml:"-"`
}

func Default() *Config {
	return &Config{
		TabSize:   8,
		LogFile:   homePath(".djacartalog"),
		StatusBar: true,
	}
}

// DefaultPath is $DJACARTA_CONFIG or ~/.djacarta.toml.
func DefaultPath() string {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path
	}
	return homePath(".djacarta.toml")
}

func homePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}

// Load reads the settings file at path, or at DefaultPath if path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key %q in %s", key.String(), path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TabSize < 1 || c.TabSize > 255 {
		return fmt.Errorf("tabsize %d is not between 1 and 255", c.TabSize)
	}
	return nil
}
