package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Load builds the configuration from defaults, an optional .env file and
// the process environment, then validates it. A missing .env file is not
// an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	envToPath := envMappings(reflect.TypeOf(Config{}), "")
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			if path, ok := envToPath[key]; ok {
				return path, value
			}
			// Unmapped variables are dropped instead of polluting the tree.
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envMappings walks the config struct tags and returns the environment
// variable to koanf path mapping.
func envMappings(t reflect.Type, prefix string) map[string]string {
	mappings := make(map[string]string)
	for i := range t.NumField() {
		field := t.Field(i)
		koanfTag := field.Tag.Get("koanf")
		if koanfTag == "" {
			continue
		}
		path := koanfTag
		if prefix != "" {
			path = prefix + "." + koanfTag
		}
		if field.Type.Kind() == reflect.Struct {
			for envVar, nested := range envMappings(field.Type, path) {
				mappings[envVar] = nested
			}
			continue
		}
		if envTag := field.Tag.Get("env"); envTag != "" {
			mappings[strings.ToUpper(envTag)] = path
		}
	}
	return mappings
}
