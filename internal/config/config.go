package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/vidyasagar/seltrack/internal/tracker"
)

// Config holds seltrack configuration.
type Config struct {
	History  HistoryConfig
	UI       UIConfig
	Database DatabaseConfig
	Log      LogConfig

	path string
}

// HistoryConfig holds selection history settings.
type HistoryConfig struct {
	Max int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
	Icon  string // file holding the glyph drawn next to the current entry
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds debug log settings. An empty File disables logging.
type LogConfig struct {
	File string
}

// Path returns the config file this Config was loaded from or will be saved to.
func (c Config) Path() string {
	return c.path
}

// Load reads configuration from file and env. An empty path means the
// default location. Env var overrides use prefix SELTRACK_, for example
// SELTRACK_HISTORY_MAX=50.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv("SELTRACK_CONFIG")
	}
	if path == "" {
		dir, err := Dir()
		if err != nil {
			return Config{}, err
		}
		path = filepath.Join(dir, "config.toml")
	}

	v := newViper(path)

	// A missing file just means defaults.
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	c, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	c.path = path
	return c, nil
}

// Save writes cfg to its path, creating the config directory if needed.
func Save(cfg Config) error {
	if cfg.path == "" {
		dir, err := Dir()
		if err != nil {
			return err
		}
		cfg.path = filepath.Join(dir, "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("history.max", ClampMax(cfg.History.Max))
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.icon", cfg.UI.Icon)
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(cfg.path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Watch calls onChange with the re-read configuration every time the file
// at cfg.Path changes. onChange runs on the watcher goroutine. Errors while
// re-reading are passed to onError and the change is skipped.
func Watch(cfg Config, onChange func(Config), onError func(error)) {
	v := newViper(cfg.path)
	// WatchConfig needs a successful read to know which file to watch.
	if err := v.ReadInConfig(); err != nil {
		if onError != nil {
			onError(fmt.Errorf("watch config %s: %w", cfg.path, err))
		}
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		c, err := decode(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		c.path = cfg.path
		onChange(c)
	})
	v.WatchConfig()
}

// ClampMax bounds a history length to what the tracker accepts.
func ClampMax(n int) int {
	switch {
	case n < tracker.MinCapacity:
		return tracker.MinCapacity
	case n > tracker.MaxCapacity:
		return tracker.MaxCapacity
	default:
		return n
	}
}

func newViper(path string) *viper.Viper {
	v := viper.New()

	v.SetDefault("history.max", tracker.DefaultCapacity)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.icon", "")
	v.SetDefault("database.path", "")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("SELTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.History.Max = ClampMax(c.History.Max)
	if c.UI.Theme == "" {
		c.UI.Theme = "default"
	}
	return c, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

// Dir returns the directory holding seltrack's config file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "seltrack")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, "seltrack")
		} else {
			dir = filepath.Join(home, ".seltrack")
		}
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig != "" {
			dir = filepath.Join(xdgConfig, "seltrack")
		} else {
			dir = filepath.Join(home, ".config", "seltrack")
		}
	}

	return dir, nil
}

// DataDir returns the directory holding the workspace database.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "seltrack"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "seltrack"), nil
		}
		return filepath.Join(home, ".seltrack"), nil
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, "seltrack"), nil
		}
		return filepath.Join(home, ".local", "share", "seltrack"), nil
	}
}
