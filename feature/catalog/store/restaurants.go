package store

import (
	"fmt"

	"menu-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// RestaurantRepository stores restaurant rows.
type RestaurantRepository struct {
	db  *gorm.DB
	ids sequence
	v   *Validator
}

// Create inserts a restaurant and returns its identifier.
func (r *RestaurantRepository) Create(name string) (int, error) {
	id, err := r.ids.Next(r.db, models.TableRestaurant)
	if err != nil {
		return 0, err
	}

	err = r.db.Table(models.TableRestaurant).Create(map[string]any{"id": id, "name": name}).Error
	if err != nil {
		return 0, translate(err, fmt.Sprintf("restaurant %d", id))
	}
	return id, nil
}

// Get returns the restaurant with the given identifier.
func (r *RestaurantRepository) Get(id int) (*models.RestaurantRow, error) {
	var row models.RestaurantRow
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("restaurant with id %d", id))
	}
	return &row, nil
}

// List returns every restaurant ordered by identifier, up to MaxListRows.
func (r *RestaurantRepository) List() ([]models.RestaurantRow, error) {
	var rows []models.RestaurantRow
	if err := r.db.Order("id").Limit(MaxListRows + 1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	if err := capped(len(rows), models.TableRestaurant); err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateName rewrites the restaurant row.
func (r *RestaurantRepository) UpdateName(id int, name string) error {
	if err := r.v.MustExist(models.TableRestaurant, id); err != nil {
		return err
	}
	err := r.db.Model(&models.RestaurantRow{}).Where("id = ?", id).Updates(map[string]any{"name": name}).Error
	return translate(err, fmt.Sprintf("restaurant %d", id))
}

// Delete removes the restaurant row. Its menus must already be gone.
func (r *RestaurantRepository) Delete(id int) error {
	if err := r.v.MustExist(models.TableRestaurant, id); err != nil {
		return err
	}
	return deleteRow(r.db, &models.RestaurantRow{}, models.TableRestaurant, id)
}

// deleteRow deletes one row by identifier and fails with NotFound when nothing was removed.
func deleteRow(db *gorm.DB, model any, table string, id int) error {
	res := db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return translate(res.Error, fmt.Sprintf("%s %d", table, id))
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, fmt.Sprintf("%s with id %d", table, id))
	}
	return nil
}
