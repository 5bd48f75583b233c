package cmd

import (
	"testing"

	"menu-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRestaurants(t *testing.T) {
	list, err := decodeRestaurants([]byte(`  [{"name": "Ruth"}, {"id": 3, "name": "Luigi"}]`))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].ID.IsPending())
	assert.Equal(t, reconcile.Persisted(3), list[1].ID)

	one, err := decodeRestaurants([]byte(`{"id": null, "name": "Ruth", "menus": [{"name": "Lunch"}]}`))
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "Lunch", one[0].Menus[0].Name)

	_, err = decodeRestaurants([]byte(`{"id": -1}`))
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "apply", "snapshot", "integrity"} {
		assert.True(t, names[want], want)
	}
}
