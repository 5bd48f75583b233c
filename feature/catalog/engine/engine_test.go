package engine

import (
	"testing"

	"menu-manager/core/apperror"
	"menu-manager/core/reconcile"
	"menu-manager/feature/catalog/models"
	"menu-manager/feature/catalog/store"
	"menu-manager/feature/catalog/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedHoliday stores Restaurant 1 > Menu 2 "Simple Menu" > Section 3 > Item 4 linked to
// Keto and Vegetarian.
func seedHoliday(t *testing.T) *store.Store {
	t.Helper()
	s := storetest.New(t)
	storetest.Exec(t, s.DB(),
		"INSERT INTO restaurant (id, name) VALUES (1, 'Ruth')",
		"INSERT INTO menu (id, name, restaurant_id) VALUES (2, 'Simple Menu', 1)",
		"INSERT INTO section (id, name, menu_id) VALUES (3, 'Mains', 2)",
		"INSERT INTO item (id, name, description, price, section_id) VALUES (4, 'Salad', 'Greens', 7.5, 3)",
		"INSERT INTO feature (id, name) VALUES (0, 'Keto'), (1, 'Vegetarian'), (2, 'Spicy')",
		"INSERT INTO item_feature (item_id, feature_id) VALUES (4, 0), (4, 1)",
	)
	return s
}

func count(t *testing.T, s *store.Store, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.DB().Table(table).Count(&n).Error)
	return n
}

func TestEngine_HolidayMenu(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	result, err := e.UpdateRestaurant(models.Restaurant{
		ID:   reconcile.Persisted(1),
		Name: "Ruth",
		Menus: []models.Menu{
			{ID: reconcile.Persisted(2), Name: "Holiday Menu", Sections: []models.Section{}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []reconcile.Action{
		{Type: reconcile.ActionUnlink, Table: models.TableItemFeature, ID: 4, Ref: "Keto"},
		{Type: reconcile.ActionUnlink, Table: models.TableItemFeature, ID: 4, Ref: "Vegetarian"},
		{Type: reconcile.ActionDelete, Table: models.TableItem, ID: 4},
		{Type: reconcile.ActionDelete, Table: models.TableSection, ID: 3},
		{Type: reconcile.ActionUpdate, Table: models.TableMenu, ID: 2},
	}, e.Journal().Actions)

	menu, err := s.Menus.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Holiday Menu", menu.Name)
	assert.Zero(t, count(t, s, models.TableSection))
	assert.Zero(t, count(t, s, models.TableItem))
	assert.Zero(t, count(t, s, models.TableItemFeature))

	require.Len(t, result.Menus, 1)
	assert.Empty(t, result.Menus[0].Sections)
}

func TestEngine_Idempotent(t *testing.T) {
	s := seedHoliday(t)

	current, err := s.RestaurantTree(1)
	require.NoError(t, err)

	e := New(s, nil)
	_, err = e.UpdateRestaurant(current)
	require.NoError(t, err)
	assert.Zero(t, e.Journal().Len())
}

func TestEngine_DanglingIdentifier(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	_, err := e.UpdateRestaurant(models.Restaurant{
		ID:   reconcile.Persisted(1),
		Name: "Renamed",
		Menus: []models.Menu{
			{Name: "Brunch"},
			{ID: reconcile.Persisted(99), Name: "Ghost"},
		},
	})
	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "99")
	assert.Zero(t, e.Journal().Len())

	assert.EqualValues(t, 1, count(t, s, models.TableMenu))
	row, err := s.Restaurants.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Ruth", row.Name)
}

func TestEngine_DuplicateIdentifier(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	_, err := e.UpdateRestaurant(models.Restaurant{
		ID:   reconcile.Persisted(1),
		Name: "Ruth",
		Menus: []models.Menu{
			{ID: reconcile.Persisted(2), Name: "A"},
			{ID: reconcile.Persisted(2), Name: "B"},
		},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	assert.Zero(t, e.Journal().Len())
}

func TestEngine_MixedChildren(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	result, err := e.UpdateRestaurant(models.Restaurant{
		ID:   reconcile.Persisted(1),
		Name: "Ruth",
		Menus: []models.Menu{
			{Name: "Brunch", Sections: []models.Section{
				{Name: "Eggs", Items: []models.Item{
					{Name: "Benedict", Price: 12, Features: []string{"Vegetarian"}},
				}},
			}},
			{ID: reconcile.Persisted(2), Name: "Simple Menu", Sections: []models.Section{
				{ID: reconcile.Persisted(3), Name: "Mains", Items: []models.Item{
					{ID: reconcile.Persisted(4), Name: "Salad", Description: "Greens", Price: 7.5, Features: []string{"Keto", "Vegetarian"}},
					{Name: "Wings", Price: 9, Features: []string{"Spicy"}},
				}},
			}},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Menus, 2)
	brunch := result.Menus[0]
	assert.Equal(t, reconcile.Persisted(3), brunch.ID)
	assert.Equal(t, reconcile.Persisted(4), brunch.Sections[0].ID)
	assert.Equal(t, reconcile.Persisted(5), brunch.Sections[0].Items[0].ID)

	mains := result.Menus[1].Sections[0]
	require.Len(t, mains.Items, 2)
	assert.Equal(t, reconcile.Persisted(4), mains.Items[0].ID)
	assert.Equal(t, reconcile.Persisted(6), mains.Items[1].ID)

	summary := e.Journal().Summary()
	assert.Equal(t, reconcile.Summary{Created: 4, Linked: 2}, summary)

	// Stored trees come back ordered by identifier.
	tree, err := s.RestaurantTree(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, result.Menus, tree.Menus)
}

func TestEngine_FeatureSetDifference(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	_, err := e.UpdateItem(models.Item{
		ID:          reconcile.Persisted(4),
		Name:        "Salad",
		Description: "Greens",
		Price:       7.5,
		Features:    []string{"Vegetarian", "Spicy"},
	})
	require.NoError(t, err)

	assert.Equal(t, []reconcile.Action{
		{Type: reconcile.ActionUnlink, Table: models.TableItemFeature, ID: 4, Ref: "Keto"},
		{Type: reconcile.ActionLink, Table: models.TableItemFeature, ID: 4, Ref: "Spicy"},
	}, e.Journal().Actions)

	names, err := s.Items.FeatureNames(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"Spicy", "Vegetarian"}, names)
}

func TestEngine_UnknownFeature(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	_, err := e.UpdateItem(models.Item{
		ID:       reconcile.Persisted(4),
		Name:     "Salad",
		Price:    7.5,
		Features: []string{"Keto", "Vegetarian", "Halal", "Spicy"},
	})
	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "Halal")

	for _, a := range e.Journal().Actions {
		assert.NotEqual(t, reconcile.ActionLink, a.Type)
	}
	assert.EqualValues(t, 3, count(t, s, models.TableFeature))
}

func TestEngine_ScalarUpdateOnlyWhenChanged(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	_, err := e.UpdateItem(models.Item{
		ID: reconcile.Persisted(4), Name: "Salad", Description: "Greens", Price: 8,
		Features: []string{"Keto", "Vegetarian"},
	})
	require.NoError(t, err)
	assert.Equal(t, []reconcile.Action{{Type: reconcile.ActionUpdate, Table: models.TableItem, ID: 4}}, e.Journal().Actions)

	row, err := s.Items.Get(4)
	require.NoError(t, err)
	assert.Equal(t, 8.0, row.Price)
	assert.Equal(t, "Greens", row.Description)
}

func TestEngine_CascadeDeleteOrder(t *testing.T) {
	s := seedHoliday(t)
	storetest.Exec(t, s.DB(),
		"INSERT INTO section (id, name, menu_id) VALUES (5, 'Desserts', 2)",
		"INSERT INTO item (id, name, description, price, section_id) VALUES (6, 'Pie', '', 5, 5), (7, 'Tart', '', 6, 5)",
		"INSERT INTO item_feature (item_id, feature_id) VALUES (7, 1)",
	)
	e := New(s, nil)

	require.NoError(t, e.DeleteMenu(2))

	assert.Equal(t, []reconcile.Action{
		{Type: reconcile.ActionUnlink, Table: models.TableItemFeature, ID: 4, Ref: "Keto"},
		{Type: reconcile.ActionUnlink, Table: models.TableItemFeature, ID: 4, Ref: "Vegetarian"},
		{Type: reconcile.ActionDelete, Table: models.TableItem, ID: 4},
		{Type: reconcile.ActionDelete, Table: models.TableSection, ID: 3},
		{Type: reconcile.ActionDelete, Table: models.TableItem, ID: 6},
		{Type: reconcile.ActionUnlink, Table: models.TableItemFeature, ID: 7, Ref: "Vegetarian"},
		{Type: reconcile.ActionDelete, Table: models.TableItem, ID: 7},
		{Type: reconcile.ActionDelete, Table: models.TableSection, ID: 5},
		{Type: reconcile.ActionDelete, Table: models.TableMenu, ID: 2},
	}, e.Journal().Actions)
	assert.Equal(t, reconcile.Summary{Deleted: 6, Unlinked: 3}, e.Journal().Summary())

	for _, table := range []string{models.TableMenu, models.TableSection, models.TableItem, models.TableItemFeature} {
		assert.Zero(t, count(t, s, table), table)
	}
	assert.EqualValues(t, 3, count(t, s, models.TableFeature))
}

func TestEngine_CreateRestaurant(t *testing.T) {
	s := storetest.New(t)
	storetest.Exec(t, s.DB(), "INSERT INTO feature (id, name) VALUES (0, 'Vegetarian')")
	e := New(s, nil)

	created, err := e.CreateRestaurant(models.Restaurant{
		Name: "Fresh",
		Menus: []models.Menu{{Name: "Lunch", Sections: []models.Section{{Name: "Soups", Items: []models.Item{
			{Name: "Tomato", Price: 4, Features: []string{"Vegetarian", "Vegetarian"}},
		}}}}},
	})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Persisted(0), created.ID)
	assert.Equal(t, []string{"Vegetarian"}, created.Menus[0].Sections[0].Items[0].Features)
	assert.Equal(t, reconcile.Summary{Created: 4, Linked: 1}, e.Journal().Summary())

	_, err = e.CreateRestaurant(models.Restaurant{ID: reconcile.Persisted(5), Name: "Nope"})
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = e.CreateRestaurant(models.Restaurant{Name: "Nested", Menus: []models.Menu{{ID: reconcile.Persisted(0), Name: "Lunch"}}})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestEngine_AddAndDelete(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	_, err := e.AddMenu(42, models.Menu{Name: "Orphan"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = e.AddSection(2, models.Section{ID: reconcile.Persisted(3), Name: "Mains"})
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)

	item, err := e.AddItem(3, models.Item{Name: "Wings", Price: 9, Features: []string{"Spicy"}})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Persisted(5), item.ID)

	require.NoError(t, e.DeleteItem(5))
	assert.ErrorIs(t, e.DeleteItem(5), apperror.ErrNotFound)

	require.NoError(t, e.DeleteSection(3))
	require.NoError(t, e.DeleteRestaurant(1))
	assert.Zero(t, count(t, s, models.TableRestaurant))
	assert.Zero(t, count(t, s, models.TableItemFeature))
}

func TestEngine_StandaloneUpdates(t *testing.T) {
	s := seedHoliday(t)
	e := New(s, nil)

	section, err := e.UpdateSection(models.Section{ID: reconcile.Persisted(3), Name: "Starters", Items: []models.Item{}})
	require.NoError(t, err)
	assert.Empty(t, section.Items)

	menu, err := e.UpdateMenu(models.Menu{ID: reconcile.Persisted(2), Name: "Simple Menu", Sections: []models.Section{
		{ID: reconcile.Persisted(3), Name: "Starters"},
		{Name: "Drinks"},
	}})
	require.NoError(t, err)
	require.Len(t, menu.Sections, 2)
	assert.Equal(t, reconcile.Persisted(4), menu.Sections[1].ID)

	_, err = e.UpdateMenu(models.Menu{Name: "No Id"})
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	_, err = e.UpdateSection(models.Section{ID: reconcile.Persisted(77), Name: "Nope"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
