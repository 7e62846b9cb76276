package core

import (
	"fmt"
	"strconv"
)

// Config is the agent configuration captured at construction time. Agents
// read it but never write to it.
type Config map[string]any

// String returns the value under key as a string or def when absent.
func (c Config) String(key, def string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Float returns a numeric value under key or def. YAML and JSON decoders
// produce int, int64 or float64 depending on the literal, all are accepted.
func (c Config) Float(key string, def float64) (float64, error) {
	v, ok := c[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return def, fmt.Errorf("config %q: %w", key, err)
		}
		return f, nil
	default:
		return def, fmt.Errorf("config %q: expected number, got %T", key, v)
	}
}

// Int returns an integer value under key or def.
func (c Config) Int(key string, def int64) (int64, error) {
	v, ok := c[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != float64(int64(n)) {
			return def, fmt.Errorf("config %q: %v is not an integer", key, n)
		}
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return def, fmt.Errorf("config %q: %w", key, err)
		}
		return i, nil
	default:
		return def, fmt.Errorf("config %q: expected integer, got %T", key, v)
	}
}

// Bool returns a boolean value under key or def.
func (c Config) Bool(key string, def bool) (bool, error) {
	v, ok := c[key]
	if !ok || v == nil {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return def, fmt.Errorf("config %q: %w", key, err)
		}
		return parsed, nil
	default:
		return def, fmt.Errorf("config %q: expected bool, got %T", key, v)
	}
}

// Map returns a nested mapping under key. A missing key yields nil without
// error.
func (c Config) Map(key string) (map[string]any, error) {
	v, ok := c[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("config %q: expected mapping, got %T", key, v)
	}
	return m, nil
}
