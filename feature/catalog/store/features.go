package store

import (
	"fmt"

	"menu-manager/core/apperror"
	"menu-manager/feature/catalog/models"

	"gorm.io/gorm"
)

// FeatureRepository stores the feature vocabulary, keyed by unique name.
type FeatureRepository struct {
	db  *gorm.DB
	ids sequence
	v   *Validator
}

// List returns every feature ordered by name, up to MaxListRows.
func (r *FeatureRepository) List() ([]models.FeatureRow, error) {
	var rows []models.FeatureRow
	if err := r.db.Order("name").Limit(MaxListRows + 1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	if err := capped(len(rows), models.TableFeature); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByName resolves a feature by exact name.
func (r *FeatureRepository) ByName(name string) (*models.FeatureRow, error) {
	var row models.FeatureRow
	if err := r.db.Where("name = ?", name).First(&row).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("feature %q", name))
	}
	return &row, nil
}

// Create inserts a feature. A taken name is a Conflict.
func (r *FeatureRepository) Create(name string) (int, error) {
	if err := r.mustBeFree(name); err != nil {
		return 0, err
	}

	id, err := r.ids.Next(r.db, models.TableFeature)
	if err != nil {
		return 0, err
	}

	if err := r.db.Table(models.TableFeature).Create(map[string]any{"id": id, "name": name}).Error; err != nil {
		return 0, translate(err, fmt.Sprintf("feature %q", name))
	}
	return id, nil
}

// Rename changes a feature's name in place, so existing associations follow it.
func (r *FeatureRepository) Rename(currentName, newName string) error {
	if err := r.v.MustExistBy(models.TableFeature, "name", currentName); err != nil {
		return err
	}
	if currentName == newName {
		return nil
	}
	if err := r.mustBeFree(newName); err != nil {
		return err
	}

	err := r.db.Model(&models.FeatureRow{}).Where("name = ?", currentName).Updates(map[string]any{"name": newName}).Error
	return translate(err, fmt.Sprintf("feature %q", newName))
}

// Delete removes a feature. A feature still linked to an item is a Conflict.
func (r *FeatureRepository) Delete(name string) error {
	row, err := r.ByName(name)
	if err != nil {
		return err
	}

	var linked int64
	if err := r.db.Model(&models.ItemFeatureRow{}).Where("feature_id = ?", row.ID).Count(&linked).Error; err != nil {
		return fmt.Errorf("failed to count associations of feature %q: %w", name, err)
	}
	if linked > 0 {
		return apperror.Conflict("feature %q is still linked to %d item(s)", name, linked)
	}

	return deleteRow(r.db, &models.FeatureRow{}, models.TableFeature, row.ID)
}

func (r *FeatureRepository) mustBeFree(name string) error {
	var n int64
	if err := r.db.Model(&models.FeatureRow{}).Where("name = ?", name).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check feature %q: %w", name, err)
	}
	if n > 0 {
		return apperror.Conflict("feature %q already exists", name)
	}
	return nil
}
