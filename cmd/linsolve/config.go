// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/linsolve/linalg"
	"github.com/katalvlaran/linsolve/quadrature"
	"gopkg.in/yaml.v3"
)

// Config holds defaults for every command. Flags set on the command line
// override values loaded from --config.
type Config struct {
	Method     string `yaml:"method" validate:"method"`
	Precision  int    `yaml:"precision" validate:"min=0,max=17"`
	LogLevel   string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	Partitions int    `yaml:"partitions" validate:"min=1"`
	Points     int    `yaml:"points" validate:"min=2,max=6"`
}

// configValidate checks Config values; field names in its errors are the
// yaml keys.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	configValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
	})
	_ = configValidate.RegisterValidation("method", func(fl validator.FieldLevel) bool {
		_, ok := linalg.ParseMethod(fl.Field().String())
		return ok
	})
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Method:     linalg.DefaultMethod.String(),
		Precision:  linalg.DefaultPrecision,
		LogLevel:   "info",
		Partitions: quadrature.DefaultPartitions,
		Points:     quadrature.DefaultPoints,
	}
}

// loadConfig reads path over DefaultConfig; keys absent from the file keep
// their defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err = configValidate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return cfg, fmt.Errorf("config %s: invalid %s %q (rule %s)",
				path, fe.Field(), fmt.Sprint(fe.Value()), fe.Tag())
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
