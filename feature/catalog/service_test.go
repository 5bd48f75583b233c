package catalog

import (
	"testing"

	"menu-manager/core/apperror"
	"menu-manager/core/reconcile"
	"menu-manager/feature/catalog/models"
	"menu-manager/feature/catalog/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := storetest.Open(t)
	storetest.Exec(t, db,
		"INSERT INTO restaurant (id, name) VALUES (1, 'Ruth')",
		"INSERT INTO menu (id, name, restaurant_id) VALUES (2, 'Simple Menu', 1)",
		"INSERT INTO section (id, name, menu_id) VALUES (3, 'Mains', 2)",
		"INSERT INTO item (id, name, description, price, section_id) VALUES (4, 'Salad', 'Greens', 7.5, 3)",
		"INSERT INTO feature (id, name) VALUES (0, 'Keto'), (1, 'Vegetarian')",
		"INSERT INTO item_feature (item_id, feature_id) VALUES (4, 0)",
	)
	return NewService(db, zap.NewNop()), db
}

func rows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestService_GetRestaurant(t *testing.T) {
	svc, _ := setupService(t)

	r, err := svc.GetRestaurant(1)
	require.NoError(t, err)
	assert.Equal(t, "Ruth", r.Name)
	require.Len(t, r.Menus, 1)
	require.Len(t, r.Menus[0].Sections, 1)
	require.Len(t, r.Menus[0].Sections[0].Items, 1)
	assert.Equal(t, []string{"Keto"}, r.Menus[0].Sections[0].Items[0].Features)

	_, err = svc.GetRestaurant(42)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_CreateRestaurants(t *testing.T) {
	svc, db := setupService(t)

	res, err := svc.CreateRestaurants([]models.Restaurant{{
		Name: "Luigi",
		Menus: []models.Menu{{
			Name: "Dinner",
			Sections: []models.Section{{
				Name:  "Pasta",
				Items: []models.Item{{Name: "Carbonara", Price: 12, Features: []string{"Keto"}}},
			}},
		}},
	}}, reconcile.Options{})
	require.NoError(t, err)

	assert.False(t, res.DryRun)
	assert.Equal(t, reconcile.Summary{Created: 4, Linked: 1}, res.Summary)
	require.Len(t, res.Data, 1)
	assert.Equal(t, reconcile.Persisted(2), res.Data[0].ID)
	assert.EqualValues(t, 2, rows(t, db, models.TableRestaurant))
}

func TestService_DryRunRollsBack(t *testing.T) {
	svc, db := setupService(t)

	res, err := svc.DeleteRestaurants([]int{1}, reconcile.Options{DryRun: true})
	require.NoError(t, err)

	assert.True(t, res.DryRun)
	assert.Equal(t, 4, res.Summary.Deleted)
	assert.Equal(t, 1, res.Summary.Unlinked)
	assert.EqualValues(t, 1, rows(t, db, models.TableRestaurant))
	assert.EqualValues(t, 1, rows(t, db, models.TableItemFeature))
}

func TestService_DryRunReleasesIdentifiers(t *testing.T) {
	svc, db := setupService(t)

	dry, err := svc.CreateFeature("Spicy", reconcile.Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 2, dry.Data.ID)
	assert.EqualValues(t, 2, rows(t, db, models.TableFeature))

	res, err := svc.CreateFeature("Spicy", reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Data.ID)

	again, err := svc.CreateFeature("Mild", reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, again.Data.ID)
}

func TestService_FailedBatchRollsBack(t *testing.T) {
	svc, db := setupService(t)

	_, err := svc.CreateRestaurants([]models.Restaurant{
		{Name: "Luigi"},
		{Name: "Mario", Menus: []models.Menu{{
			Name: "Dinner",
			Sections: []models.Section{{
				Name:  "Pasta",
				Items: []models.Item{{Name: "Lasagna", Features: []string{"Halal"}}},
			}},
		}}},
	}, reconcile.Options{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.EqualValues(t, 1, rows(t, db, models.TableRestaurant))
	assert.EqualValues(t, 1, rows(t, db, models.TableItem))
}

func TestService_InvalidInput(t *testing.T) {
	svc, _ := setupService(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"empty restaurants", func() error {
			_, err := svc.CreateRestaurants(nil, reconcile.Options{})
			return err
		}},
		{"blank restaurant name", func() error {
			_, err := svc.CreateRestaurants([]models.Restaurant{{Name: " "}}, reconcile.Options{})
			return err
		}},
		{"negative price", func() error {
			_, err := svc.UpdateItems([]models.Item{{ID: reconcile.Persisted(4), Name: "Salad", Price: -1}}, reconcile.Options{})
			return err
		}},
		{"persisted id on create", func() error {
			_, err := svc.AddMenus(1, []models.Menu{{ID: reconcile.Persisted(2), Name: "Copy"}}, reconcile.Options{})
			return err
		}},
		{"pending id on update", func() error {
			_, err := svc.UpdateMenus([]models.Menu{{Name: "Lunch"}}, reconcile.Options{})
			return err
		}},
		{"empty ids", func() error {
			_, err := svc.DeleteItems(nil, reconcile.Options{})
			return err
		}},
		{"blank feature name", func() error {
			_, err := svc.CreateFeature("", reconcile.Options{})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), apperror.ErrInvalidArgument)
		})
	}
}

func TestService_UpdateItemFeatures(t *testing.T) {
	svc, _ := setupService(t)

	res, err := svc.UpdateItems([]models.Item{{
		ID:          reconcile.Persisted(4),
		Name:        "Salad",
		Description: "Greens",
		Price:       7.5,
		Features:    []string{"Vegetarian"},
	}}, reconcile.Options{})
	require.NoError(t, err)

	assert.Equal(t, reconcile.Summary{Linked: 1, Unlinked: 1}, res.Summary)

	item, err := svc.GetItem(4)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegetarian"}, item.Features)
}

func TestService_ListByIDs(t *testing.T) {
	svc, _ := setupService(t)

	menus, err := svc.ListMenus([]int{2})
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Simple Menu", menus[0].Name)

	_, err = svc.ListSections([]int{3, 9})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	items, err := svc.ListItems(nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestService_Features(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.CreateFeature("Spicy", reconcile.Options{})
	require.NoError(t, err)

	_, err = svc.CreateFeature("Keto", reconcile.Options{})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	res, err := svc.RenameFeatures([]models.FeatureUpdate{{CurrentName: "Spicy", NewName: "Hot"}}, reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Summary.Updated)

	names, err := svc.ListFeatures()
	require.NoError(t, err)
	assert.Equal(t, []string{"Hot", "Keto", "Vegetarian"}, names)

	_, err = svc.DeleteFeature("Keto", reconcile.Options{})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	_, err = svc.DeleteFeature("Hot", reconcile.Options{})
	require.NoError(t, err)

	_, err = svc.DeleteFeature("Hot", reconcile.Options{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_ApplyRestaurants(t *testing.T) {
	svc, db := setupService(t)

	res, err := svc.ApplyRestaurants([]models.Restaurant{
		{Name: "Luigi"},
		{ID: reconcile.Persisted(1), Name: "Ruth's"},
	}, reconcile.Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.Created)
	assert.Equal(t, 3, res.Summary.Deleted)
	assert.Equal(t, 1, res.Summary.Updated)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Ruth's", res.Data[1].Name)
	assert.EqualValues(t, 2, rows(t, db, models.TableRestaurant))
	assert.Zero(t, rows(t, db, models.TableMenu))
}
