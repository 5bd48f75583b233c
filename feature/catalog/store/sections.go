package store

import (
	"fmt"

	"menu-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// SectionRepository stores section rows.
type SectionRepository struct {
	db  *gorm.DB
	ids sequence
	v   *Validator
}

// Create inserts a section under an existing menu.
func (r *SectionRepository) Create(menuID int, name string) (int, error) {
	if err := r.v.MustExist(models.TableMenu, menuID); err != nil {
		return 0, err
	}

	id, err := r.ids.Next(r.db, models.TableSection)
	if err != nil {
		return 0, err
	}

	err = r.db.Table(models.TableSection).Create(map[string]any{
		"id":      id,
		"name":    name,
		"menu_id": menuID,
	}).Error
	if err != nil {
		return 0, translate(err, fmt.Sprintf("section %d", id))
	}
	return id, nil
}

// Get returns the section with the given identifier.
func (r *SectionRepository) Get(id int) (*models.SectionRow, error) {
	var row models.SectionRow
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("section with id %d", id))
	}
	return &row, nil
}

// List returns every section ordered by identifier, up to MaxListRows.
func (r *SectionRepository) List() ([]models.SectionRow, error) {
	var rows []models.SectionRow
	if err := r.db.Order("id").Limit(MaxListRows + 1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	if err := capped(len(rows), models.TableSection); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByMenu returns the sections of an existing menu ordered by identifier.
func (r *SectionRepository) ListByMenu(menuID int) ([]models.SectionRow, error) {
	if err := r.v.MustExist(models.TableMenu, menuID); err != nil {
		return nil, err
	}

	var rows []models.SectionRow
	if err := r.db.Where("menu_id = ?", menuID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sections of menu %d: %w", menuID, err)
	}
	return rows, nil
}

// UpdateName rewrites the section row.
func (r *SectionRepository) UpdateName(id int, name string) error {
	if err := r.v.MustExist(models.TableSection, id); err != nil {
		return err
	}
	err := r.db.Model(&models.SectionRow{}).Where("id = ?", id).Updates(map[string]any{"name": name}).Error
	return translate(err, fmt.Sprintf("section %d", id))
}

// Delete removes the section row. Its items must already be gone.
func (r *SectionRepository) Delete(id int) error {
	if err := r.v.MustExist(models.TableSection, id); err != nil {
		return err
	}
	return deleteRow(r.db, &models.SectionRow{}, models.TableSection, id)
}
