package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func intPtr(n int) *int { return &n }

func TestParseFieldConfig(t *testing.T) {
	tests := []struct {
		name      string
		fieldType FieldType
		raw       string
		wantErr   bool
	}{
		{"valid select config", FieldTypeSelect, `{"options":["action","drama"]}`, false},
		{"valid rating config", FieldTypeRating, `{"max_rating":5}`, false},
		{"valid text config", FieldTypeText, `{"max_length":200}`, false},
		{"text config without max_length", FieldTypeText, `{}`, false},
		{"empty boolean config", FieldTypeBoolean, `{}`, false},
		{"empty raw config", FieldTypeSelect, ``, false},
		{"null raw config", FieldTypeRating, `null`, false},
		{"options on a rating field", FieldTypeRating, `{"options":["a"]}`, true},
		{"max_rating on a select field", FieldTypeSelect, `{"max_rating":5}`, true},
		{"settings on a boolean field", FieldTypeBoolean, `{"max_length":5}`, true},
		{"malformed json", FieldTypeText, `{max_length}`, true},
		{"unknown field type", FieldType("color"), `{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFieldConfig(tt.fieldType, datatypes.JSON(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cfg)
		})
	}
}

func TestSelectConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		wantErr bool
	}{
		{"single option", []string{"watched"}, false},
		{"multiple options", []string{"queued", "watching", "done"}, false},
		{"no options", nil, true},
		{"empty option", []string{"a", "  "}, true},
		{"duplicate options", []string{"a", "a"}, true},
		{"case-insensitive duplicate", []string{"Action", "action"}, true},
		{"duplicate after trimming", []string{"action", " action "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &SelectConfig{Options: tt.options}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSelectConfigValidateValue(t *testing.T) {
	cfg := &SelectConfig{Options: []string{"queued", "watching", "done"}}

	assert.NoError(t, cfg.ValidateValue("watching"))
	assert.Error(t, cfg.ValidateValue("paused"), "unconfigured option should be rejected")
	assert.Error(t, cfg.ValidateValue("Watching"), "option matching is case-sensitive")
	assert.Error(t, cfg.ValidateValue(42), "non-string value should be rejected")
}

func TestRatingConfigValidate(t *testing.T) {
	assert.NoError(t, (&RatingConfig{MaxRating: 1}).Validate())
	assert.NoError(t, (&RatingConfig{MaxRating: 10}).Validate())
	assert.Error(t, (&RatingConfig{MaxRating: 0}).Validate())
	assert.Error(t, (&RatingConfig{MaxRating: 11}).Validate())
	assert.Error(t, (&RatingConfig{MaxRating: -3}).Validate())
}

func TestRatingConfigValidateValue(t *testing.T) {
	cfg := &RatingConfig{MaxRating: 5}

	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"whole step", float64(3), false},
		{"half step", 3.5, false},
		{"minimum", float64(1), false},
		{"maximum", float64(5), false},
		{"int value", 4, false},
		{"below minimum", 0.5, true},
		{"above maximum", 5.5, true},
		{"quarter step", 2.25, true},
		{"string value", "3", true},
		{"boolean value", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.ValidateValue(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTextConfigValidateValue(t *testing.T) {
	unlimited := &TextConfig{}
	assert.NoError(t, unlimited.ValidateValue("any length goes when max_length is omitted"))

	capped := &TextConfig{MaxLength: intPtr(5)}
	assert.NoError(t, capped.ValidateValue("12345"))
	assert.Error(t, capped.ValidateValue("123456"))
	assert.Error(t, capped.ValidateValue(12345), "non-string value should be rejected")

	// Length is counted in runes, not bytes
	assert.NoError(t, capped.ValidateValue("한국어입니"))
}

func TestTextConfigValidate(t *testing.T) {
	assert.NoError(t, (&TextConfig{}).Validate())
	assert.NoError(t, (&TextConfig{MaxLength: intPtr(1)}).Validate())
	assert.Error(t, (&TextConfig{MaxLength: intPtr(0)}).Validate())
}

func TestBooleanConfigValidateValue(t *testing.T) {
	cfg := &BooleanConfig{}
	assert.NoError(t, cfg.ValidateValue(true))
	assert.NoError(t, cfg.ValidateValue(false))
	assert.Error(t, cfg.ValidateValue("true"), "string true should be rejected")
	assert.Error(t, cfg.ValidateValue(1), "numeric truthiness should be rejected")
	assert.Error(t, cfg.ValidateValue(nil))
}

func TestRouteValue(t *testing.T) {
	t.Run("select routes to text column", func(t *testing.T) {
		var dst VideoFieldValue
		require.NoError(t, RouteValue(FieldTypeSelect, "done", &dst))
		require.NotNil(t, dst.ValueText)
		assert.Equal(t, "done", *dst.ValueText)
		assert.Nil(t, dst.ValueNumeric)
		assert.Nil(t, dst.ValueBoolean)
	})

	t.Run("rating routes to numeric column", func(t *testing.T) {
		var dst VideoFieldValue
		require.NoError(t, RouteValue(FieldTypeRating, 4.5, &dst))
		require.NotNil(t, dst.ValueNumeric)
		assert.Equal(t, 4.5, *dst.ValueNumeric)
		assert.Nil(t, dst.ValueText)
		assert.Nil(t, dst.ValueBoolean)
	})

	t.Run("boolean routes to boolean column", func(t *testing.T) {
		var dst VideoFieldValue
		require.NoError(t, RouteValue(FieldTypeBoolean, true, &dst))
		require.NotNil(t, dst.ValueBoolean)
		assert.True(t, *dst.ValueBoolean)
	})

	t.Run("routing clears stale columns", func(t *testing.T) {
		old := "stale"
		dst := VideoFieldValue{ValueText: &old}
		require.NoError(t, RouteValue(FieldTypeBoolean, false, &dst))
		assert.Nil(t, dst.ValueText)
		require.NotNil(t, dst.ValueBoolean)
		assert.False(t, *dst.ValueBoolean)
	})

	t.Run("type mismatch is rejected", func(t *testing.T) {
		var dst VideoFieldValue
		assert.Error(t, RouteValue(FieldTypeRating, "five", &dst))
		assert.Error(t, RouteValue(FieldTypeText, 7, &dst))
		assert.Error(t, RouteValue(FieldTypeBoolean, "yes", &dst))
	})
}
