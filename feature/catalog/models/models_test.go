package models

import (
	"encoding/json"
	"testing"

	"menu-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurant_JSON(t *testing.T) {
	doc := `{"id":1,"name":"Ruth","menus":[{"id":2,"name":"Holiday Menu","sections":[]},{"name":"Brunch","sections":[{"name":"Eggs","items":[{"name":"Benedict","price":12.5,"features":["Vegetarian"]}]}]}]}`

	var r Restaurant
	require.NoError(t, json.Unmarshal([]byte(doc), &r))

	assert.Equal(t, reconcile.Persisted(1), r.ID)
	require.Len(t, r.Menus, 2)
	assert.Equal(t, reconcile.Persisted(2), r.Menus[0].ID)
	assert.True(t, r.Menus[1].ID.IsPending())
	assert.Equal(t, []string{"Vegetarian"}, r.Menus[1].Sections[0].Items[0].Features)
}

func TestItem_SameScalars(t *testing.T) {
	a := Item{Name: "Soup", Description: "Hot", Price: 4}
	assert.True(t, a.SameScalars(Item{Name: "Soup", Description: "Hot", Price: 4, Features: []string{"Vegan"}}))
	assert.False(t, a.SameScalars(Item{Name: "Soup", Description: "Cold", Price: 4}))
	assert.False(t, a.SameScalars(Item{Name: "Soup", Description: "Hot", Price: 5}))
}

func TestRows_ToDomain(t *testing.T) {
	item := ItemRow{ID: 4, Name: "Soup", Price: 3}.ToDomain(nil)
	assert.Equal(t, reconcile.Persisted(4), item.ID)
	assert.NotNil(t, item.Features)

	menu := MenuRow{ID: 0, Name: "Lunch"}.ToDomain()
	v, ok := menu.ID.Value()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Empty(t, menu.Sections)
}
