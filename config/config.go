// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to environment overrides, ex: FISHBIO_CHART_FORMAT
	EnvPrefix = "FISHBIO"

	// RecordExtension is the suffix of the GenBank files that are audited
	RecordExtension = ".gbk"

	// ChartFormat is the default image format of the completeness chart
	ChartFormat = "pdf"
)

// ReportConfig is settings for the text report
type ReportConfig struct {
	// also list the tRNA genes that weren't found
	ShowMissingTRNA bool `mapstructure:"show-missing-trna"`
}

// ChartConfig is settings for the completeness chart
type ChartConfig struct {
	// image format, also used as the file extension
	Format string `mapstructure:"format"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment and
// those available from the command line
type Config struct {
	// suffix of the record files in the input directory
	Extension string `mapstructure:"extension"`

	// path to a YAML gene catalogue, empty for the built in one
	Catalogue string `mapstructure:"catalogue"`

	// log at debug level
	Verbose bool `mapstructure:"verbose"`

	// Report settings
	Report ReportConfig `mapstructure:"report"`

	// Chart settings
	Chart ChartConfig `mapstructure:"chart"`
}

// SetDefaults registers the default settings and environment overrides on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("extension", RecordExtension)
	v.SetDefault("catalogue", "")
	v.SetDefault("verbose", false)
	v.SetDefault("report.show-missing-trna", false)
	v.SetDefault("chart.format", ChartFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// ReadSettings merges a YAML settings file into v. An empty path is a no-op.
func ReadSettings(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return nil
}

// New returns a new Config struct populated by the global Viper
// settings (either from a settings file, the environment
// and/or command line arguments)
func New() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper decodes and checks the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	c.Chart.Format = strings.ToLower(strings.TrimPrefix(c.Chart.Format, "."))
	if !supportedChartFormat(c.Chart.Format) {
		return nil, fmt.Errorf("unsupported chart format %q (use pdf, png, svg, eps, jpg or tif)", c.Chart.Format)
	}
	if c.Extension == "" {
		return nil, fmt.Errorf("record extension can't be empty")
	}

	return &c, nil
}

// ChartFile returns the chart file name for an output base name.
func (c *Config) ChartFile(base string) string {
	return base + "_histogram." + c.Chart.Format
}

// ReportFile returns the text report file name for an output base name.
func (c *Config) ReportFile(base string) string {
	return base + "_report.txt"
}

// JSONFile returns the JSON results file name for an output base name.
func (c *Config) JSONFile(base string) string {
	return base + "_results.json"
}

func supportedChartFormat(format string) bool {
	switch format {
	case "pdf", "png", "svg", "eps", "jpg", "jpeg", "tif", "tiff":
		return true
	}
	return false
}
