package utils

import (
	"testing"

	"menu-manager/core/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"Empty", "", nil, false},
		{"Single", "4", []int{4}, false},
		{"List", "1,2, 3", []int{1, 2, 3}, false},
		{"Zero", "0", []int{0}, false},
		{"Duplicates", "2,1,2", []int{2, 1}, false},
		{"Negative", "1,-2", nil, true},
		{"Garbage", "1,a", nil, true},
		{"Trailing Comma", "1,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDs(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = ParseID("twelve")
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("1"))
	assert.False(t, ToBool(""))
	assert.False(t, ToBool("yes"))
}
