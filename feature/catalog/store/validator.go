package store

import (
	"fmt"

	"menu-manager/core/apperror"

	"gorm.io/gorm"
)

// Validator confirms referenced rows exist before a mutation reaches the database.
type Validator struct {
	db *gorm.DB
}

// MustExist fails with NotFound unless table has a row with the given id.
func (v *Validator) MustExist(table string, id int) error {
	var n int64
	if err := v.db.Table(table).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check %s %d: %w", table, id, err)
	}
	if n == 0 {
		return apperror.NotFound("%s with id %d does not exist", table, id)
	}
	return nil
}

// MustExistBy fails with NotFound unless table has a row whose column equals key.
func (v *Validator) MustExistBy(table, column string, key any) error {
	var n int64
	if err := v.db.Table(table).Where(fmt.Sprintf("%s = ?", column), key).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check %s %v: %w", table, key, err)
	}
	if n == 0 {
		return apperror.NotFound("%s with %s %v does not exist", table, column, key)
	}
	return nil
}
