package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"
)

type Search struct {
	CaseSensitive bool          `toml:"case-sensitive"`
	WholeWord     bool          `toml:"whole-word"`
	Regex         bool          `toml:"regex"`
	RegexTimeout  time.Duration `toml:"regex-timeout"`
}

type Compare struct {
	Theme             string `toml:"theme"`
	TabWidth          int    `toml:"tab-width"`
	Foreground        string `toml:"foreground"`
	Background        string `toml:"background"`
	Added             string `toml:"added"`
	Removed           string `toml:"removed"`
	Modified          string `toml:"modified"`
	ChangedForeground string `toml:"changed-foreground"`
	HeaderForeground  string `toml:"header-foreground"`
	HeaderBackground  string `toml:"header-background"`
}

type Config struct {
	Search  Search  `toml:"search"`
	Compare Compare `toml:"compare"`
}

func Default() Config {
	return Config{
		Search: Search{
			RegexTimeout: 2 * time.Second,
		},
		Compare: Compare{
			TabWidth:          4,
			Foreground:        "#E6EDF3",
			Background:        "#0D1117",
			Added:             "#238636",
			Removed:           "#DA3633",
			Modified:          "#D29922",
			ChangedForeground: "#FFFFFF",
			HeaderForeground:  "#E6EDF3",
			HeaderBackground:  "#161B22",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	if userCfg.Search.CaseSensitive {
		cfg.Search.CaseSensitive = true
	}
	if userCfg.Search.WholeWord {
		cfg.Search.WholeWord = true
	}
	if userCfg.Search.Regex {
		cfg.Search.Regex = true
	}
	if userCfg.Search.RegexTimeout != 0 {
		cfg.Search.RegexTimeout = userCfg.Search.RegexTimeout
	}
	if userCfg.Compare.TabWidth > 0 {
		cfg.Compare.TabWidth = userCfg.Compare.TabWidth
	}
	if userCfg.Compare.Theme != "" {
		cfg.Compare.Theme = userCfg.Compare.Theme
	}
	if cfg.Compare.Theme != "" {
		theme, err := LoadTheme(cfg.Compare.Theme)
		if err != nil {
			return cfg, err
		}
		mergeColors(&cfg.Compare, theme)
	}
	mergeColors(&cfg.Compare, userCfg.Compare)

	return cfg, Validate(cfg)
}

// mergeColors copies every color set in src over dst.
func mergeColors(dst *Compare, src Compare) {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&dst.Foreground, src.Foreground},
		{&dst.Background, src.Background},
		{&dst.Added, src.Added},
		{&dst.Removed, src.Removed},
		{&dst.Modified, src.Modified},
		{&dst.ChangedForeground, src.ChangedForeground},
		{&dst.HeaderForeground, src.HeaderForeground},
		{&dst.HeaderBackground, src.HeaderBackground},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}

// Validate reports every invalid setting in cfg.
func Validate(cfg Config) error {
	var err error
	if cfg.Search.RegexTimeout < 0 {
		err = multierr.Append(err, fmt.Errorf("search.regex-timeout: must not be negative, got %s", cfg.Search.RegexTimeout))
	}
	if cfg.Compare.TabWidth < 1 {
		err = multierr.Append(err, fmt.Errorf("compare.tab-width: must be positive, got %d", cfg.Compare.TabWidth))
	}
	for _, c := range []struct {
		key, value string
	}{
		{"foreground", cfg.Compare.Foreground},
		{"background", cfg.Compare.Background},
		{"added", cfg.Compare.Added},
		{"removed", cfg.Compare.Removed},
		{"modified", cfg.Compare.Modified},
		{"changed-foreground", cfg.Compare.ChangedForeground},
		{"header-foreground", cfg.Compare.HeaderForeground},
		{"header-background", cfg.Compare.HeaderBackground},
	} {
		if tcell.GetColor(c.value) == tcell.ColorDefault {
			err = multierr.Append(err, fmt.Errorf("compare.%s: unknown color %q", c.key, c.value))
		}
	}
	return err
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml. Colors may be top-level keys or
// nested under a [compare] table.
func LoadTheme(name string) (Compare, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Compare{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Compare{}, err
	}
	var wrap struct {
		Compare *Compare `toml:"compare"`
	}
	if _, err := toml.Decode(string(data), &wrap); err == nil && wrap.Compare != nil {
		return *wrap.Compare, nil
	}
	var c Compare
	if _, err := toml.Decode(string(data), &c); err != nil {
		return Compare{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("QTEXT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qtext"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qtext"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
