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

// Package config reads the editor's settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hectoedit/hecto/editor"
	"github.com/hectoedit/hecto/types"
)

// Config is the root configuration structure.
type Config struct {
	QuitTimes      int             `toml:"quit_times"`
	MessageTimeout int             `toml:"message_timeout"` // seconds
	LogFile        string          `toml:"log_file"`
	StatusBar      StatusBarConfig `toml:"status_bar"`
}

// StatusBarConfig holds xterm 256-color palette indices.
type StatusBarConfig struct {
	Foreground int `toml:"foreground"`
	Background int `toml:"background"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	s := editor.DefaultSettings()
	cfg := &Config{
		QuitTimes:      s.QuitTimes,
		MessageTimeout: int(s.MessageTimeout / time.Second),
		StatusBar: StatusBarConfig{
			Foreground: int(s.StatusFg),
			Background: int(s.StatusBg),
		},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.LogFile = filepath.Join(home, ".hectolog")
	}
	return cfg
}

// DefaultPath is hecto/config.toml in the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hecto", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error
	if c.QuitTimes < 1 {
		errs = append(errs, fmt.Errorf("quit_times=%d must be at least 1", c.QuitTimes))
	}
	if c.MessageTimeout < 1 {
		errs = append(errs, fmt.Errorf("message_timeout=%d must be at least 1", c.MessageTimeout))
	}
	errs = append(errs, validateColor("status_bar.foreground", c.StatusBar.Foreground))
	errs = append(errs, validateColor("status_bar.background", c.StatusBar.Background))
	return errors.Join(errs...)
}

func validateColor(name string, value int) error {
	if value < 0 || value > 255 {
		return fmt.Errorf("%s=%d is not a 256-color palette index", name, value)
	}
	return nil
}

// Settings converts the configuration for the editor.
func (c *Config) Settings() editor.Settings {
	return editor.Settings{
		QuitTimes:      c.QuitTimes,
		MessageTimeout: time.Duration(c.MessageTimeout) * time.Second,
		StatusFg:       types.Color(c.StatusBar.Foreground),
		StatusBg:       types.Color(c.StatusBar.Background),
	}
}
