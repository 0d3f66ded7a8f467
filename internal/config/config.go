package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultConfigFileName = "config.toml"

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Rename  string `toml:"rename"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
}

type Config struct {
	Keys Keymap `toml:"keys"`
}

// ResolveConfigPath returns the per-user config location, falling back
// to the working directory when the user config dir is unknown.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "todo", DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there
// first if no file exists. Keys missing from the file keep their
// default binding.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		Keys: Keymap{
			Quit:    "q",
			Add:     "e",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "backspace",
			Rename:  "enter",
			Confirm: "enter",
			Cancel:  "esc",
		},
	}
}
