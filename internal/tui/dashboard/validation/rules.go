// Package validation holds the live input checks of the editor forms. They
// only colour the input; the controller decides what is stored.
package validation

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/user/fieldeditor/internal/registry"
	"github.com/user/fieldeditor/internal/schema"
)

func ValidateNonEmpty(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func ValidateIntRange(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

// ValidatePositiveDuration accepts Go durations such as 2s or 1500ms.
func ValidatePositiveDuration() func(string) error {
	return func(s string) error {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("expected a duration like 2s")
		}
		if d <= 0 {
			return fmt.Errorf("must be longer than zero")
		}
		return nil
	}
}

// ValidateColor accepts an empty value, which draws as transparent.
func ValidateColor() func(string) error {
	return func(s string) error {
		if s == "" || registry.ValidColor(s) {
			return nil
		}
		return fmt.Errorf("expected a colour like #RRGGBB")
	}
}

func ValidateOptionsJSON() func(string) error {
	return func(s string) error {
		if _, err := schema.ParseOptions(s); err != nil {
			return fmt.Errorf("invalid JSON for options: %v", err)
		}
		return nil
	}
}

func ValidateEnum(allowed ...string) func(string) error {
	return func(s string) error {
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
	}
}

// ValidateSchemaPath requires a non-empty path to a .json file.
func ValidateSchemaPath() func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("path is required")
		}
		if !strings.EqualFold(filepath.Ext(s), ".json") {
			return fmt.Errorf("expected a .json file")
		}
		return nil
	}
}
