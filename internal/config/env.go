package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// envAllowEmpty lets an explicitly empty variable clear a value, e.g.
// JOBS_PURGE_SCHEDULE="" turns the background sweep off.
const envAllowEmpty = "allowempty"

// applyEnv overrides every field of section that carries an `env:"NAME[,allowempty]"` tag.
// path is the dotted yaml key of section and only feeds error messages.
func applyEnv(section reflect.Value, path string) error {
	typ := section.Type()

	for i := 0; i < section.NumField(); i++ {
		field := section.Field(i)
		meta := typ.Field(i)
		key := yamlKey(meta)
		if path != "" {
			key = path + "." + key
		}

		if field.Kind() == reflect.Struct {
			if err := applyEnv(field, key); err != nil {
				return err
			}
			continue
		}

		name, opt, _ := strings.Cut(meta.Tag.Get("env"), ",")
		if name == "" {
			continue
		}

		value, ok := os.LookupEnv(name)
		if !ok || (value == "" && opt != envAllowEmpty) {
			continue
		}

		if err := setFromEnv(field, value); err != nil {
			return fmt.Errorf("%s (%s): %w", name, key, err)
		}
	}

	return nil
}

func yamlKey(f reflect.StructField) string {
	if name, _, _ := strings.Cut(f.Tag.Get("yaml"), ","); name != "" {
		return name
	}
	return strings.ToLower(f.Name)
}

// setFromEnv parses value into the kinds used by Config
func setFromEnv(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		field.SetInt(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}

	return nil
}
