// Package config loads dhumal settings from a config file and DHUMAL_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/hrutik5321/dhumal/internal/db"
	"github.com/hrutik5321/dhumal/internal/logging"
	"github.com/hrutik5321/dhumal/internal/ui/table"
)

const EnvPrefix = "DHUMAL"

type Config struct {
	Render   RenderConfig   `mapstructure:"render"`
	Database db.ConnConfig  `mapstructure:"database"`
	Log      logging.Config `mapstructure:"log"`
}

// RenderConfig is the style applied to every table the tool renders.
type RenderConfig struct {
	TitleAlign   string       `mapstructure:"title_align"`
	HeadingAlign string       `mapstructure:"heading_align"`
	Justify      bool         `mapstructure:"justify"`
	NoBorder     bool         `mapstructure:"no_border"`
	Border       BorderConfig `mapstructure:"border"`
	Prefix       string       `mapstructure:"prefix"`
	// Aligns maps a column index to an alignment name, e.g. {"1": "right"}.
	Aligns map[string]string `mapstructure:"aligns"`
}

type BorderConfig struct {
	Edge   string `mapstructure:"edge"`
	Fill   string `mapstructure:"fill"`
	Top    string `mapstructure:"top"`
	Bottom string `mapstructure:"bottom"`
}

func setDefaults(v *viper.Viper) {
	def := logging.DefaultConfig()
	v.SetDefault("render.title_align", "center")
	v.SetDefault("render.heading_align", "center")
	v.SetDefault("render.justify", false)
	v.SetDefault("render.no_border", false)
	v.SetDefault("render.prefix", "")
	v.SetDefault("render.border.edge", table.DefaultBorder.Edge)
	v.SetDefault("render.border.fill", table.DefaultBorder.Fill)
	v.SetDefault("render.border.top", table.DefaultBorder.Top)
	v.SetDefault("render.border.bottom", table.DefaultBorder.Bottom)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.file", def.File)
	v.SetDefault("log.max_size_mb", def.MaxSizeMB)
	v.SetDefault("log.max_backups", def.MaxBackups)
	v.SetDefault("log.max_age_days", def.MaxAgeDays)
}

// Load reads path, or $HOME/.dhumal.{yaml,json,toml} when path is empty. A missing
// default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".dhumal")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", filepath.Base(v.ConfigFileUsed()), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Apply configures t. Unknown alignment names and bad column indices are errors.
func (r RenderConfig) Apply(t *table.Table) error {
	if r.TitleAlign != "" {
		a, ok := table.ParseAlign(r.TitleAlign)
		if !ok {
			return fmt.Errorf("title_align: unknown alignment %q", r.TitleAlign)
		}
		t.SetTitleAlign(a)
	}
	if r.HeadingAlign != "" {
		a, ok := table.ParseAlign(r.HeadingAlign)
		if !ok {
			return fmt.Errorf("heading_align: unknown alignment %q", r.HeadingAlign)
		}
		t.SetHeadingAlign(a)
	}
	for col, name := range r.Aligns {
		idx, err := strconv.Atoi(col)
		if err != nil || idx < 0 {
			return fmt.Errorf("aligns: bad column index %q", col)
		}
		a, ok := table.ParseAlign(name)
		if !ok {
			return fmt.Errorf("aligns: unknown alignment %q for column %d", name, idx)
		}
		t.SetAlign(idx, a)
	}

	t.SetJustify(r.Justify)
	t.SetBorder(table.Border{
		Edge:   r.Border.Edge,
		Fill:   r.Border.Fill,
		Top:    r.Border.Top,
		Bottom: r.Border.Bottom,
	})
	if r.NoBorder {
		t.RemoveBorder()
	}
	t.SetPrefix(r.Prefix)
	return nil
}
