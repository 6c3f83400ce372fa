package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// UsernamePattern allows letters, digits and @/./+/-/_
	UsernamePattern = `^[\w.@+-]+$`

	// PhonePattern allows an optional leading plus followed by digits, spaces and dashes
	PhonePattern = `^\+?[0-9][0-9 \-]{5,14}$`

	// PasswordMinLength is the minimum password length
	PasswordMinLength = 8

	// PasswordMaxBytes is the longest password bcrypt accepts
	PasswordMaxBytes = 72
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username *regexp.Regexp
	Phone    *regexp.Regexp
	Numeric  *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
	Phone:    regexp.MustCompile(PhonePattern),
	Numeric:  regexp.MustCompile(`^[0-9]+$`),
}

// Options configures the custom rules
type Options struct {
	// Sports lists the accepted values for the "sport" tag
	Sports []string
}

// RegisterRules adds the custom tags (sport, username, phone, notnumeric, passwordbytes) to v
func RegisterRules(v *validator.Validate, opts Options) error {
	sports := make(map[string]struct{}, len(opts.Sports))
	for _, s := range opts.Sports {
		sports[s] = struct{}{}
	}

	rules := map[string]validator.Func{
		"sport": func(fl validator.FieldLevel) bool {
			_, ok := sports[fl.Field().String()]
			return ok
		},
		"username": func(fl validator.FieldLevel) bool {
			return IsValidUsername(fl.Field().String())
		},
		"phone": func(fl validator.FieldLevel) bool {
			return IsValidPhone(fl.Field().String())
		},
		"notnumeric": func(fl validator.FieldLevel) bool {
			return !IsEntirelyNumeric(fl.Field().String())
		},
		"passwordbytes": func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= PasswordMaxBytes
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the custom rules on gin's default binding validator
func RegisterWithGin(opts Options) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterRules(v, opts)
}

// IsValidUsername reports whether s is a well-formed username
func IsValidUsername(s string) bool {
	return CompiledPatterns.Username.MatchString(s)
}

// IsValidPhone reports whether s looks like a phone number
func IsValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(strings.TrimSpace(s))
}

// IsEntirelyNumeric reports whether s consists of digits only
func IsEntirelyNumeric(s string) bool {
	return CompiledPatterns.Numeric.MatchString(s)
}
