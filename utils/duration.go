package utils

import (
	"fmt"
	"time"
)

// Duration is a time.Duration that can be serialized to/from YAML
type Duration time.Duration

// MarshalYAML marshals Duration to YAML
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML unmarshals Duration from YAML
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	err := unmarshal(&v)
	if err != nil {
		return err
	}

	switch value := v.(type) {
	case int:
		*d = Duration(time.Duration(value))
		return nil
	case int64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}

		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("failed to unmarshal duration %v", v)
	}
}
