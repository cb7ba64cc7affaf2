package logger

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config contains logging configuration.
type Config struct {
	Level   string `yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn error fatal"`
	Format  string `yaml:"format" mapstructure:"format" validate:"oneof=json console"`
	Output  string `yaml:"output" mapstructure:"output" validate:"oneof=stdout stderr"`
	NoColor bool   `yaml:"no_color" mapstructure:"no_color"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "warn"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("log.%s must be one of [%s] (got: %v)", toKey(fe.Field()), fe.Param(), fe.Value())
		}
		return fmt.Errorf("validating log config: %w", err)
	}
	return nil
}

func toKey(field string) string {
	switch field {
	case "NoColor":
		return "no_color"
	default:
		out := []rune(field)
		if len(out) > 0 && out[0] >= 'A' && out[0] <= 'Z' {
			out[0] += 'a' - 'A'
		}
		return string(out)
	}
}
