package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var configLogger = zerolog.Nop()

func SetLogger(l zerolog.Logger) {
	configLogger = l
}

const (
	CurrentVersion = "1"

	ViewSourceEmbed = "embed"
	ViewSourceS3    = "s3"
)

// Config represents the complete configuration structure
type Config struct {
	Version     string            `yaml:"version" default:"1"`
	Site        SiteConfig        `yaml:"site"`
	Server      ServerConfig      `yaml:"server"`
	Navigation  NavigationConfig  `yaml:"navigation"`
	Views       ViewsConfig       `yaml:"views"`
	Theme       ThemeConfig       `yaml:"theme"`
	Compression CompressionConfig `yaml:"compression"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"console"`
}

type SiteConfig struct {
	Name    string `yaml:"name" default:"Grocery Store"`
	Tagline string `yaml:"tagline" default:"Fresh groceries, picked up or delivered"`
}

type ServerConfig struct {
	Host string `yaml:"host" default:"0.0.0.0"`
	Port string `yaml:"port" default:"8087"`
	// Seconds to wait for in-flight requests on shutdown.
	ShutdownTimeout int `yaml:"shutdown_timeout" default:"10"`
}

// NavigationConfig controls how the route table treats entries whose view
// cannot be resolved. Strict mode refuses to start.
type NavigationConfig struct {
	Strict bool `yaml:"strict" default:"true"`
}

type ViewsConfig struct {
	Source   string `yaml:"source" default:"embed"`
	Bucket   string `yaml:"bucket" default:""`
	Prefix   string `yaml:"prefix" default:"views/"`
	Endpoint string `yaml:"endpoint" default:""`
	Region   string `yaml:"region" default:"auto"`
}

type ThemeConfig struct {
	Default        string `yaml:"default" default:"dark"`
	AllowSwitching bool   `yaml:"allow_switching" default:"true"`
}

type CompressionConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
	// Responses smaller than this many bytes are sent uncompressed.
	MinSize int `yaml:"min_size" default:"512"`
}

// Default returns a Config with every default tag applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfig reads the YAML file at path over the defaults, then applies the
// environment overrides and validates the result. A missing file is not an
// error.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		configLogger.Info().Str("path", path).Msg("Config file not found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	config.ApplyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overrides settings that may come from the environment.
func (c *Config) ApplyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if bucket := os.Getenv(EnvViewsBucket); bucket != "" {
		c.Views.Bucket = bucket
	}
}

func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported configuration version %q (want %q)", c.Version, CurrentVersion)
	}

	switch c.Views.Source {
	case ViewSourceEmbed:
	case ViewSourceS3:
		if c.Views.Bucket == "" {
			return fmt.Errorf("views.bucket is required when views.source is %q", ViewSourceS3)
		}
	default:
		return fmt.Errorf("unknown views.source %q", c.Views.Source)
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid server.port %q: %w", c.Server.Port, err)
	}

	if c.Compression.MinSize < 0 {
		return fmt.Errorf("invalid compression.min_size %d", c.Compression.MinSize)
	}

	if c.Theme.Default != "dark" && c.Theme.Default != "light" {
		return fmt.Errorf("invalid theme.default %q", c.Theme.Default)
	}

	return nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func applyDefaults(config interface{}) {
	v := reflect.ValueOf(config)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.IsValid() || !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			applyDefaults(field.Addr().Interface())
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(defaultValue)
		case reflect.Bool:
			if val, err := strconv.ParseBool(defaultValue); err == nil {
				field.SetBool(val)
			}
		case reflect.Int:
			if val, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				field.SetInt(val)
			}
		case reflect.Float64:
			if val, err := strconv.ParseFloat(defaultValue, 64); err == nil {
				field.SetFloat(val)
			}
		case reflect.Slice:
			if field.Len() == 0 && field.Type().Elem().Kind() == reflect.String {
				parts := strings.Split(defaultValue, ",")
				slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
				for j, part := range parts {
					slice.Index(j).SetString(strings.TrimSpace(part))
				}
				field.Set(slice)
			}
		default:
			configLogger.Warn().
				Str("field_name", fieldType.Name).
				Str("field_type", field.Kind().String()).
				Msg("Unsupported field type for default value")
		}
	}
}
