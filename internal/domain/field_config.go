package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"gorm.io/datatypes"
)

// FieldConfig is the type-specific configuration of a custom field
// One implementation exists per FieldType; ParseFieldConfig picks the
// variant from the field type, so no runtime type inspection is needed
type FieldConfig interface {
	// Validate checks the configuration itself (at field creation/update)
	Validate() error
	// ValidateValue checks a raw user value against the configuration
	ValidateValue(raw interface{}) error
}

// SelectConfig configures a select field
type SelectConfig struct {
	Options []string `json:"options"`
}

// Validate requires at least one non-empty option with no
// case-insensitive duplicates after trimming whitespace
func (c *SelectConfig) Validate() error {
	if len(c.Options) == 0 {
		return fmt.Errorf("select field requires at least one option")
	}
	seen := make(map[string]struct{}, len(c.Options))
	for i, opt := range c.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			return fmt.Errorf("option %d is empty", i)
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate option '%s'", trimmed)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// ValidateValue requires the value to exactly match one configured option
func (c *SelectConfig) ValidateValue(raw interface{}) error {
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("select value must be a string, got %T", raw)
	}
	for _, opt := range c.Options {
		if s == strings.TrimSpace(opt) {
			return nil
		}
	}
	return fmt.Errorf("'%s' is not one of the configured options", s)
}

// RatingConfig configures a rating field
type RatingConfig struct {
	MaxRating int `json:"max_rating"`
}

// Validate requires max_rating in [1,10]
func (c *RatingConfig) Validate() error {
	if c.MaxRating < 1 || c.MaxRating > 10 {
		return fmt.Errorf("max_rating must be between 1 and 10, got %d", c.MaxRating)
	}
	return nil
}

// ValidateValue accepts whole or half steps within [1, max_rating]
func (c *RatingConfig) ValidateValue(raw interface{}) error {
	n, ok := toFloat(raw)
	if !ok {
		return fmt.Errorf("rating value must be a number, got %T", raw)
	}
	if n < 1 || n > float64(c.MaxRating) {
		return fmt.Errorf("rating %v is out of range [1, %d]", n, c.MaxRating)
	}
	if math.Mod(n*2, 1) != 0 {
		return fmt.Errorf("rating %v must be a whole or half step", n)
	}
	return nil
}

// TextConfig configures a text field
type TextConfig struct {
	MaxLength *int `json:"max_length,omitempty"`
}

// Validate allows max_length to be omitted (unlimited) or an integer >= 1
func (c *TextConfig) Validate() error {
	if c.MaxLength != nil && *c.MaxLength < 1 {
		return fmt.Errorf("max_length must be at least 1, got %d", *c.MaxLength)
	}
	return nil
}

// ValidateValue enforces max_length when configured (counted in runes,
// since text is user-entered display content)
func (c *TextConfig) ValidateValue(raw interface{}) error {
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("text value must be a string, got %T", raw)
	}
	if c.MaxLength != nil && utf8.RuneCountInString(s) > *c.MaxLength {
		return fmt.Errorf("text exceeds max length of %d characters", *c.MaxLength)
	}
	return nil
}

// BooleanConfig configures a boolean field; it carries no settings
type BooleanConfig struct{}

// Validate always succeeds; emptiness is enforced by ParseFieldConfig's
// strict decoding (unknown keys are rejected)
func (c *BooleanConfig) Validate() error {
	return nil
}

// ValidateValue requires a strict true/false
func (c *BooleanConfig) ValidateValue(raw interface{}) error {
	if _, ok := raw.(bool); !ok {
		return fmt.Errorf("boolean value must be true or false, got %T", raw)
	}
	return nil
}

// ParseFieldConfig decodes the stored config blob into the variant for the
// given field type. Decoding is strict: keys that do not belong to the
// variant (e.g. options on a rating field) are rejected
func ParseFieldConfig(fieldType FieldType, raw datatypes.JSON) (FieldConfig, error) {
	var cfg FieldConfig
	switch fieldType {
	case FieldTypeSelect:
		cfg = &SelectConfig{}
	case FieldTypeRating:
		cfg = &RatingConfig{}
	case FieldTypeText:
		cfg = &TextConfig{}
	case FieldTypeBoolean:
		cfg = &BooleanConfig{}
	default:
		return nil, fmt.Errorf("unknown field type '%s'", fieldType)
	}

	if len(raw) > 0 && string(raw) != "null" {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config does not match field type '%s': %w", fieldType, err)
		}
	}
	return cfg, nil
}

// RouteValue places a validated raw value into the typed column for the
// field type, clearing the other two columns
func RouteValue(fieldType FieldType, raw interface{}, dst *VideoFieldValue) error {
	dst.ValueText = nil
	dst.ValueNumeric = nil
	dst.ValueBoolean = nil

	switch fieldType {
	case FieldTypeSelect, FieldTypeText:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected string value for %s field, got %T", fieldType, raw)
		}
		dst.ValueText = &s
	case FieldTypeRating:
		n, ok := toFloat(raw)
		if !ok {
			return fmt.Errorf("expected numeric value for rating field, got %T", raw)
		}
		dst.ValueNumeric = &n
	case FieldTypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected boolean value, got %T", raw)
		}
		dst.ValueBoolean = &b
	default:
		return fmt.Errorf("unknown field type '%s'", fieldType)
	}
	return nil
}

// toFloat normalizes the numeric types JSON decoding may produce
func toFloat(raw interface{}) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
