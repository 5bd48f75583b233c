package store

import (
	"fmt"

	"menu-manager/core/apperror"
	"menu-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// ItemFields holds the scalar columns of an item.
type ItemFields struct {
	Name        string
	Description string
	Price       float64
}

func (f ItemFields) columns() map[string]any {
	return map[string]any{
		"name":        f.Name,
		"description": f.Description,
		"price":       f.Price,
	}
}

// ItemRepository stores item rows and their feature associations.
type ItemRepository struct {
	db  *gorm.DB
	ids sequence
	v   *Validator
}

// Create inserts an item under an existing section. Associations are linked separately.
func (r *ItemRepository) Create(sectionID int, fields ItemFields) (int, error) {
	if err := r.v.MustExist(models.TableSection, sectionID); err != nil {
		return 0, err
	}

	id, err := r.ids.Next(r.db, models.TableItem)
	if err != nil {
		return 0, err
	}

	cols := fields.columns()
	cols["id"] = id
	cols["section_id"] = sectionID
	if err := r.db.Table(models.TableItem).Create(cols).Error; err != nil {
		return 0, translate(err, fmt.Sprintf("item %d", id))
	}
	return id, nil
}

// Get returns the item with the given identifier.
func (r *ItemRepository) Get(id int) (*models.ItemRow, error) {
	var row models.ItemRow
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("item with id %d", id))
	}
	return &row, nil
}

// List returns every item ordered by identifier, up to MaxListRows.
func (r *ItemRepository) List() ([]models.ItemRow, error) {
	var rows []models.ItemRow
	if err := r.db.Order("id").Limit(MaxListRows + 1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	if err := capped(len(rows), models.TableItem); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListBySection returns the items of an existing section ordered by identifier.
func (r *ItemRepository) ListBySection(sectionID int) ([]models.ItemRow, error) {
	if err := r.v.MustExist(models.TableSection, sectionID); err != nil {
		return nil, err
	}

	var rows []models.ItemRow
	if err := r.db.Where("section_id = ?", sectionID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list items of section %d: %w", sectionID, err)
	}
	return rows, nil
}

// Update rewrites every scalar column of the item.
func (r *ItemRepository) Update(id int, fields ItemFields) error {
	if err := r.v.MustExist(models.TableItem, id); err != nil {
		return err
	}
	err := r.db.Model(&models.ItemRow{}).Where("id = ?", id).Updates(fields.columns()).Error
	return translate(err, fmt.Sprintf("item %d", id))
}

// Delete removes the item row. Its associations must already be released.
func (r *ItemRepository) Delete(id int) error {
	if err := r.v.MustExist(models.TableItem, id); err != nil {
		return err
	}
	return deleteRow(r.db, &models.ItemRow{}, models.TableItem, id)
}

// FeatureNames returns the names of the features linked to an item, sorted.
func (r *ItemRepository) FeatureNames(itemID int) ([]string, error) {
	names := []string{}
	err := r.db.Table(models.TableItemFeature).
		Joins("JOIN feature ON feature.id = item_feature.feature_id").
		Where("item_feature.item_id = ?", itemID).
		Order("feature.name").
		Pluck("feature.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read features of item %d: %w", itemID, err)
	}
	return names, nil
}

// Link associates a feature with an item. Linking a pair twice is a Conflict.
func (r *ItemRepository) Link(itemID, featureID int) error {
	if err := r.v.MustExist(models.TableItem, itemID); err != nil {
		return err
	}

	var n int64
	if err := r.pair(itemID, featureID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check association %d/%d: %w", itemID, featureID, err)
	}
	if n > 0 {
		return apperror.Conflict("item %d is already linked to feature %d", itemID, featureID)
	}

	err := r.db.Table(models.TableItemFeature).Create(map[string]any{
		"item_id":    itemID,
		"feature_id": featureID,
	}).Error
	return translate(err, fmt.Sprintf("association %d/%d", itemID, featureID))
}

// Unlink removes an association. Unlinking a pair that is not linked is a Conflict.
func (r *ItemRepository) Unlink(itemID, featureID int) error {
	if err := r.v.MustExist(models.TableItem, itemID); err != nil {
		return err
	}

	res := r.pair(itemID, featureID).Delete(&models.ItemFeatureRow{})
	if res.Error != nil {
		return translate(res.Error, fmt.Sprintf("association %d/%d", itemID, featureID))
	}
	if res.RowsAffected == 0 {
		return apperror.Conflict("item %d is not linked to feature %d", itemID, featureID)
	}
	return nil
}

func (r *ItemRepository) pair(itemID, featureID int) *gorm.DB {
	return r.db.Model(&models.ItemFeatureRow{}).Where("item_id = ? AND feature_id = ?", itemID, featureID)
}
