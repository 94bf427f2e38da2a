package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func TestSetLogger(t *testing.T) {
	logger := zerolog.New(os.Stdout).Level(zerolog.InfoLevel)
	SetLogger(logger)
}

func TestApplyDefaults(t *testing.T) {
	t.Run("Config struct defaults", func(t *testing.T) {
		config := &Config{}
		applyDefaults(config)

		if config.Version != CurrentVersion {
			t.Errorf("Expected version %q, got %q", CurrentVersion, config.Version)
		}
		if config.Site.Name != "Grocery Store" {
			t.Errorf("Expected site name 'Grocery Store', got %q", config.Site.Name)
		}
		if config.Server.Host != "0.0.0.0" {
			t.Errorf("Expected host '0.0.0.0', got %q", config.Server.Host)
		}
		if config.Server.Port != "8087" {
			t.Errorf("Expected port '8087', got %q", config.Server.Port)
		}
		if config.Server.ShutdownTimeout != 10 {
			t.Errorf("Expected shutdown timeout 10, got %d", config.Server.ShutdownTimeout)
		}
		if !config.Navigation.Strict {
			t.Error("Expected strict navigation by default")
		}
		if config.Views.Source != ViewSourceEmbed {
			t.Errorf("Expected views source %q, got %q", ViewSourceEmbed, config.Views.Source)
		}
		if config.Views.Prefix != "views/" {
			t.Errorf("Expected views prefix 'views/', got %q", config.Views.Prefix)
		}
		if config.Theme.Default != DarkTheme {
			t.Errorf("Expected theme %q, got %q", DarkTheme, config.Theme.Default)
		}
		if !config.Compression.Enabled {
			t.Error("Expected compression to be enabled by default")
		}
		if config.Compression.MinSize != 512 {
			t.Errorf("Expected min size 512, got %d", config.Compression.MinSize)
		}
		if config.Logging.Level != "info" {
			t.Errorf("Expected logging level 'info', got %q", config.Logging.Level)
		}
	})

	t.Run("Custom struct with various field types", func(t *testing.T) {
		type TestStruct struct {
			StringField  string   `default:"test-string"`
			BoolField    bool     `default:"true"`
			IntField     int      `default:"42"`
			Float64Field float64  `default:"3.14"`
			SliceField   []string `default:"a,b,c"`
			NoDefault    string
		}

		test := &TestStruct{}
		applyDefaults(test)

		if test.StringField != "test-string" {
			t.Errorf("Expected string field 'test-string', got %q", test.StringField)
		}
		if !test.BoolField {
			t.Error("Expected bool field to be true")
		}
		if test.IntField != 42 {
			t.Errorf("Expected int field 42, got %d", test.IntField)
		}
		if test.Float64Field != 3.14 {
			t.Errorf("Expected float64 field 3.14, got %f", test.Float64Field)
		}
		if !reflect.DeepEqual(test.SliceField, []string{"a", "b", "c"}) {
			t.Errorf("Expected slice [a b c], got %v", test.SliceField)
		}
		if test.NoDefault != "" {
			t.Errorf("Expected no default field to be empty, got %q", test.NoDefault)
		}
	})

	t.Run("Invalid default values", func(t *testing.T) {
		type InvalidStruct struct {
			BadBool bool `default:"not-a-bool"`
			BadInt  int  `default:"not-an-int"`
		}

		test := &InvalidStruct{}
		applyDefaults(test)

		if test.BadBool {
			t.Error("Expected invalid bool default to remain false")
		}
		if test.BadInt != 0 {
			t.Errorf("Expected invalid int default to remain 0, got %d", test.BadInt)
		}
	})

	t.Run("Non-struct input", func(t *testing.T) {
		stringVar := "test"
		applyDefaults(&stringVar)
		applyDefaults(stringVar)
		applyDefaults(42)
		applyDefaults(nil)
	})
}

func TestDefaultsGoldenFile(t *testing.T) {
	goldenData, err := os.ReadFile("testdata/defaults.yaml")
	if err != nil {
		t.Fatalf("Failed to read golden defaults file: %v", err)
	}

	var golden Config
	if err := yaml.Unmarshal(goldenData, &golden); err != nil {
		t.Fatalf("Failed to parse golden config: %v", err)
	}

	if got := Default(); !reflect.DeepEqual(*got, golden) {
		t.Errorf("Defaults drifted from testdata/defaults.yaml:\n got  %+v\n want %+v", *got, golden)
	}
}

func TestLoadConfig(t *testing.T) {
	SetLogger(zerolog.Nop())
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvViewsBucket, "")

	t.Run("Missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !reflect.DeepEqual(cfg, Default()) {
			t.Errorf("Expected defaults, got %+v", cfg)
		}
	})

	t.Run("Overrides keep unset defaults", func(t *testing.T) {
		cfg, err := LoadConfig("testdata/custom.yaml")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Site.Name != "Corner Market" {
			t.Errorf("Expected site name override, got %q", cfg.Site.Name)
		}
		if cfg.Site.Tagline != "Fresh groceries, picked up or delivered" {
			t.Errorf("Expected default tagline to survive, got %q", cfg.Site.Tagline)
		}
		if cfg.Navigation.Strict {
			t.Error("Expected strict navigation to be disabled")
		}
		if cfg.Views.Bucket != "grocery-views" {
			t.Errorf("Expected bucket override, got %q", cfg.Views.Bucket)
		}
		if cfg.Views.Prefix != "views/" {
			t.Errorf("Expected default prefix, got %q", cfg.Views.Prefix)
		}
		if cfg.Addr() != "0.0.0.0:9090" {
			t.Errorf("Expected addr 0.0.0.0:9090, got %q", cfg.Addr())
		}
	})

	testCases := []struct {
		name      string
		content   string
		filename  string
		errorText string
	}{
		{name: "Invalid version", filename: "testdata/invalid_version.yaml", errorText: "unsupported configuration version"},
		{name: "S3 without bucket", filename: "testdata/s3_without_bucket.yaml", errorText: "views.bucket is required"},
		{name: "Malformed YAML", content: "version: [", errorText: "failed to parse config file"},
		{name: "Unknown source", content: "version: \"1\"\nviews:\n  source: ftp\n", errorText: "unknown views.source"},
		{name: "Bad port", content: "version: \"1\"\nserver:\n  port: http\n", errorText: "invalid server.port"},
		{name: "Negative min size", content: "version: \"1\"\ncompression:\n  min_size: -1\n", errorText: "invalid compression.min_size"},
		{name: "Bad theme", content: "version: \"1\"\ntheme:\n  default: sepia\n", errorText: "invalid theme.default"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := tc.filename
			if path == "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if !strings.Contains(err.Error(), tc.errorText) {
				t.Errorf("Expected error to contain %q, got %q", tc.errorText, err.Error())
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvViewsBucket, "from-env")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Views.Bucket != "from-env" {
		t.Errorf("Expected bucket from env, got %q", cfg.Views.Bucket)
	}
}

func TestLoadConfig_EnvBeforeValidate(t *testing.T) {
	t.Setenv(EnvViewsBucket, "from-env")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := LoadConfig("testdata/s3_without_bucket.yaml")
	if err != nil {
		t.Fatalf("Expected bucket from env to satisfy the s3 source, got %v", err)
	}
	if cfg.Views.Source != ViewSourceS3 || cfg.Views.Bucket != "from-env" {
		t.Errorf("Expected s3 source with env bucket, got %+v", cfg.Views)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level from env, got %q", cfg.Logging.Level)
	}

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got %v", err)
	}
	if cfg.Views.Bucket != "from-env" {
		t.Errorf("Expected env overrides on defaults too, got %q", cfg.Views.Bucket)
	}
}
