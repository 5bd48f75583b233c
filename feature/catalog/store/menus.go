package store

import (
	"fmt"

	"menu-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// MenuRepository stores menu rows.
type MenuRepository struct {
	db  *gorm.DB
	ids sequence
	v   *Validator
}

// Create inserts a menu under an existing restaurant.
func (r *MenuRepository) Create(restaurantID int, name string) (int, error) {
	if err := r.v.MustExist(models.TableRestaurant, restaurantID); err != nil {
		return 0, err
	}

	id, err := r.ids.Next(r.db, models.TableMenu)
	if err != nil {
		return 0, err
	}

	err = r.db.Table(models.TableMenu).Create(map[string]any{
		"id":            id,
		"name":          name,
		"restaurant_id": restaurantID,
	}).Error
	if err != nil {
		return 0, translate(err, fmt.Sprintf("menu %d", id))
	}
	return id, nil
}

// Get returns the menu with the given identifier.
func (r *MenuRepository) Get(id int) (*models.MenuRow, error) {
	var row models.MenuRow
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("menu with id %d", id))
	}
	return &row, nil
}

// List returns every menu ordered by identifier, up to MaxListRows.
func (r *MenuRepository) List() ([]models.MenuRow, error) {
	var rows []models.MenuRow
	if err := r.db.Order("id").Limit(MaxListRows + 1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	if err := capped(len(rows), models.TableMenu); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByRestaurant returns the menus of an existing restaurant ordered by identifier.
func (r *MenuRepository) ListByRestaurant(restaurantID int) ([]models.MenuRow, error) {
	if err := r.v.MustExist(models.TableRestaurant, restaurantID); err != nil {
		return nil, err
	}

	var rows []models.MenuRow
	if err := r.db.Where("restaurant_id = ?", restaurantID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list menus of restaurant %d: %w", restaurantID, err)
	}
	return rows, nil
}

// UpdateName rewrites the menu row.
func (r *MenuRepository) UpdateName(id int, name string) error {
	if err := r.v.MustExist(models.TableMenu, id); err != nil {
		return err
	}
	err := r.db.Model(&models.MenuRow{}).Where("id = ?", id).Updates(map[string]any{"name": name}).Error
	return translate(err, fmt.Sprintf("menu %d", id))
}

// Delete removes the menu row. Its sections must already be gone.
func (r *MenuRepository) Delete(id int) error {
	if err := r.v.MustExist(models.TableMenu, id); err != nil {
		return err
	}
	return deleteRow(r.db, &models.MenuRow{}, models.TableMenu, id)
}
