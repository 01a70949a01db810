package parsing

import (
	"fmt"
	"reflect"
	"strings"
)

// ConfigSource is the read side of a Viper instance.
type ConfigSource interface {
	IsSet(string) bool
	Get(string) any
}

// GetConfigValue normalizes and retrieves values from the config source.
//
// Supports both kebab-case and snake_case keys.
func GetConfigValue[T any](v ConfigSource, key string) (T, bool) {
	var zero T

	// Try original key first
	if v.IsSet(key) {
		if val, ok := convertConfigValue[T](v.Get(key)); ok {
			return val, true
		}
	}

	// Try snake_case version
	snakeKey := strings.ReplaceAll(key, "-", "_")
	if snakeKey != key && v.IsSet(snakeKey) {
		if val, ok := convertConfigValue[T](v.Get(snakeKey)); ok {
			return val, true
		}
	}

	// Try kebab-case version
	kebabKey := strings.ReplaceAll(key, "_", "-")
	if kebabKey != key && v.IsSet(kebabKey) {
		if val, ok := convertConfigValue[T](v.Get(kebabKey)); ok {
			return val, true
		}
	}
	return zero, false
}

// convertConfigValue handles config entry conversions safely.
func convertConfigValue[T any](v any) (T, bool) {
	var zero T

	// Direct type match
	if val, ok := v.(T); ok {
		return val, true
	}

	switch any(zero).(type) {
	case string:
		if v == nil {
			return zero, false
		}
		str := fmt.Sprintf("%v", v)
		return any(str).(T), true

	case int:
		switch n := v.(type) {
		case int64:
			return any(int(n)).(T), true
		case int32:
			return any(int(n)).(T), true
		case float64:
			return any(int(n)).(T), true
		case string:
			var i int
			if _, err := fmt.Sscanf(n, "%d", &i); err == nil {
				return any(i).(T), true
			}
		}

	case bool:
		if s, ok := v.(string); ok {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "true", "1", "yes":
				return any(true).(T), true
			case "false", "0", "no":
				return any(false).(T), true
			}
		}
	}

	return zero, false
}

// LoadViperIntoStruct loads values from a config source into a struct's `viper`-tagged
// string, int and bool fields. Fields whose key is unset keep their current value.
func LoadViperIntoStruct(v ConfigSource, ptr any) error {
	val := reflect.ValueOf(ptr)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct")
	}

	val = val.Elem()
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("viper")
		if tag == "" || !val.Field(i).CanSet() {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			if s, ok := GetConfigValue[string](v, tag); ok {
				val.Field(i).SetString(s)
			}
		case reflect.Int:
			if n, ok := GetConfigValue[int](v, tag); ok {
				val.Field(i).SetInt(int64(n))
			}
		case reflect.Bool:
			if b, ok := GetConfigValue[bool](v, tag); ok {
				val.Field(i).SetBool(b)
			}
		default:
			return fmt.Errorf("unsupported field type %s for viper key %q", field.Type, tag)
		}
	}

	return nil
}
