package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrKeyNotFound is returned for a path that names no setting.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidValue is returned when a value cannot be parsed for a setting.
	ErrInvalidValue = errors.New("invalid value")
)

// Patch returns a copy of c with the setting at path replaced by value.
// Path segments are separated by dots and may be written in snake_case,
// kebab-case or camelCase ("rcon.waitSeconds"). The result is validated;
// c itself is never modified.
func (c Config) Patch(path, value string) (Config, error) {
	next := c
	field, err := lookup(reflect.ValueOf(&next).Elem(), path)
	if err != nil {
		return c, err
	}
	if err := setField(field, value); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := next.Validate(); err != nil {
		return c, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return next, nil
}

// Get returns the setting at path formatted as a string.
func (c Config) Get(path string) (string, error) {
	field, err := lookup(reflect.ValueOf(&c).Elem(), path)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(field.Interface()), nil
}

// Keys lists every settable path in declaration order.
func Keys() []string {
	var keys []string
	var walk func(t reflect.Type, prefix string)
	walk = func(t reflect.Type, prefix string) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			key := prefix + tagName(f)
			if f.Type.Kind() == reflect.Struct {
				walk(f.Type, key+".")
				continue
			}
			keys = append(keys, key)
		}
	}
	walk(reflect.TypeOf(Config{}), "")
	return keys
}

func tagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

// compact folds separators and case so that wait_seconds, wait-seconds and
// waitSeconds compare equal.
func compact(s string) string {
	s = strings.NewReplacer("_", "", "-", "").Replace(s)
	return strings.ToLower(s)
}

func lookup(v reflect.Value, path string) (reflect.Value, error) {
	if path == "" {
		return reflect.Value{}, fmt.Errorf("%w: empty path", ErrKeyNotFound)
	}
	parts := strings.Split(path, ".")
	for i, part := range parts {
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(parts[:i+1], "."))
		}
		found := false
		t := v.Type()
		for j := 0; j < t.NumField(); j++ {
			if compact(tagName(t.Field(j))) == compact(part) {
				v = v.Field(j)
				found = true
				break
			}
		}
		if !found {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(parts[:i+1], "."))
		}
	}
	if v.Kind() == reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s is a section", ErrKeyNotFound, path)
	}
	return v, nil
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, value)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidValue, value)
		}
		field.SetUint(n)
	default:
		return fmt.Errorf("%w: unsupported type %s", ErrInvalidValue, field.Type())
	}
	return nil
}
