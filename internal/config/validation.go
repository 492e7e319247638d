package config

import (
	"fmt"
	"strings"

	"github.com/law-makers/filters/internal/utils/output"
)

func validate(c *Config) error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error")
	}
	if !output.IsFormat(c.Format) {
		return fmt.Errorf("format must be one of %s", strings.Join(output.Formats, ", "))
	}
	if c.Filter == "" {
		return fmt.Errorf("filter name is required")
	}
	return nil
}
