package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"audiomass-server/core/logger"
	"audiomass-server/core/server"
	"audiomass-server/core/storage"
	"audiomass-server/feature/preload"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by LoadConfig.
const EnvPrefix = "AUDIOMASS"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Preload holds the audio URL handed to the editor on the root page.
	Preload preload.Config `mapstructure:"preload"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for presigning s3:// preload URLs.
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration from defaults, the .env file in path, environment
// variables and, when flags is not nil, the command-line flags named in `flag` tags.
// Flags set on the command line take precedence over everything else.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	if err := bindValues(v, flags, Config{}, ""); err != nil {
		return nil, err
	}

	// Map environment variables to nested keys (e.g. AUDIOMASS_SERVER_PORT -> server.port)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if c.Storage.Enabled {
		if _, _, err := storage.ParseObjectURL(c.Preload.URL); err != nil {
			return fmt.Errorf("preload: %w", err)
		}
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags, and binds the flag named by 'flag'.
func bindValues(v *viper.Viper, flags *pflag.FlagSet, iface any, prefix string) error {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			if err := bindValues(v, flags, reflect.New(field.Type).Elem().Interface(), key); err != nil {
				return err
			}
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))

		name := field.Tag.Get("flag")
		if name == "" || flags == nil {
			continue
		}
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}
	return nil
}
