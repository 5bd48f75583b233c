package utils

import (
	"testing"

	"menu-manager/core/apperror"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string   `validate:"notblank"`
	Price float64  `validate:"gte=0"`
	Tags  []string `validate:"dive,notblank"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{"Valid", sample{Name: "Soup", Price: 4.5, Tags: []string{"Vegan"}}, ""},
		{"Blank Name", sample{Name: "   "}, "sample.Name"},
		{"Negative Price", sample{Name: "Soup", Price: -1}, "gte=0"},
		{"Blank Tag", sample{Name: "Soup", Tags: []string{""}}, "sample.Tags[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateValue(t *testing.T) {
	assert.NoError(t, ValidateValue("feature name", "Keto", "notblank"))
	err := ValidateValue("feature name", " ", "notblank")
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "feature name")
}

func TestNewValidator_RegistersNotBlank(t *testing.T) {
	assert.NotPanics(t, func() {
		v := newValidator()
		assert.Error(t, v.Var("", "notblank"))
		assert.NoError(t, v.Var("Keto", "notblank"))
	})
}
