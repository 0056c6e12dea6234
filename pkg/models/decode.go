package models

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var timeType = reflect.TypeOf(time.Time{})

// decode writes attrs into m. Field names match exactly; unmatched keys go
// to the Extra map. Timestamps are parsed and whole floats narrow to ints.
func decode(attrs map[string]any, m Model) error {
	return decodeInto(attrs, m, false)
}

// decodeFresh is decode with slices and maps replaced rather than merged.
func decodeFresh(attrs map[string]any, m Model) error {
	return decodeInto(attrs, m, true)
}

func decodeInto(attrs map[string]any, m Model, zero bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.DecodeHookFuncType(timestampHook),
			mapstructure.DecodeHookFuncType(integralHook),
		),
		Squash:     true,
		ZeroFields: zero,
		MatchName:  func(key, field string) bool { return key == field },
		Result:     m,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(attrs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return nil
}

// timestampHook parses ISO-8601 strings bound for time.Time fields.
func timestampHook(from, to reflect.Type, data any) (any, error) {
	if to != timeType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseTime(reflect.ValueOf(data).String())
}

// integralHook rejects floats with a fractional part bound for integer
// fields. JSON numbers arrive as float64.
func integralHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	return data, nil
}

// checkBase rejects nil identity or timestamp values and timestamps that
// are neither strings nor time.Time.
func checkBase(attrs map[string]any) error {
	for _, name := range []string{AttrID, AttrCreatedAt, AttrUpdatedAt} {
		v, ok := attrs[name]
		if !ok {
			continue
		}
		if v == nil {
			return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, name)
		}
		if name == AttrID {
			continue
		}
		switch v.(type) {
		case string, time.Time:
		default:
			return fmt.Errorf("%w: %s must be an ISO-8601 string, got %T", ErrInvalidArgument, name, v)
		}
	}
	return nil
}
