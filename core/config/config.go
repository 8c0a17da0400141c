package config

import (
	"reflect"
	"strings"

	"bulk-editor/core/database"
	"bulk-editor/core/logger"
	"bulk-editor/core/queue"
	"bulk-editor/core/server"
	"bulk-editor/core/storage"
	"bulk-editor/core/taxonomy"
	"bulk-editor/feature/bulkedit"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the image bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the listings database.
	Database database.Config `mapstructure:"database"`
	// Queue holds configuration for the batch queue.
	Queue queue.Config `mapstructure:"queue"`
	// Worker holds configuration for the batch worker.
	Worker bulkedit.Config `mapstructure:"worker"`
	// Taxonomy holds configuration for the category catalog.
	Taxonomy taxonomy.Config `mapstructure:"taxonomy"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Register every key with its default so AutomaticEnv can find it
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. QUEUE_URL -> queue.url)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and sets viper defaults from the 'default'
// and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
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
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
