package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifference(t *testing.T) {
	current := []string{"Keto", "Vegetarian"}
	desired := []string{"Vegetarian", "Spicy"}

	assert.Equal(t, []string{"Keto"}, Difference(current, desired))
	assert.Equal(t, []string{"Spicy"}, Difference(desired, current))
	assert.Empty(t, Difference(desired, desired))
	assert.Equal(t, []string{"a", "b"}, Difference([]string{"a", "b", "a"}, nil))
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Distinct([]int{3, 1, 3, 2, 1}))
	assert.Nil(t, Distinct[int](nil))
}
