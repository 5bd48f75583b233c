package engine

import (
	"menu-manager/core/apperror"
	"menu-manager/core/reconcile"
	"menu-manager/feature/catalog/models"
)

// SyncFeatures makes an item's feature associations match desired, by name.
// Names in both sets are untouched. Unknown desired names fail with NotFound before any
// link is issued; features are never created implicitly.
func (e *Engine) SyncFeatures(itemID int, desired, current []string) error {
	if removed := reconcile.Difference(current, desired); len(removed) > 0 {
		if err := e.disassociate(itemID, removed); err != nil {
			return err
		}
	}

	if added := reconcile.Difference(desired, current); len(added) > 0 {
		if err := e.associate(itemID, added); err != nil {
			return err
		}
	}
	return nil
}

// associate links every named feature to the item. All names are resolved first.
func (e *Engine) associate(itemID int, names []string) error {
	if len(names) == 0 {
		return apperror.InvalidArgument("features cannot be empty")
	}

	ids := make([]int, len(names))
	for i, name := range names {
		row, err := e.store.Features.ByName(name)
		if err != nil {
			return err
		}
		ids[i] = row.ID
	}

	for i, featureID := range ids {
		if err := e.store.Items.Link(itemID, featureID); err != nil {
			return err
		}
		e.journal.RecordRef(reconcile.ActionLink, models.TableItemFeature, itemID, names[i])
	}
	return nil
}

// disassociate unlinks every named feature from the item.
func (e *Engine) disassociate(itemID int, names []string) error {
	if len(names) == 0 {
		return apperror.InvalidArgument("features cannot be empty")
	}

	for _, name := range names {
		row, err := e.store.Features.ByName(name)
		if err != nil {
			return err
		}
		if err := e.store.Items.Unlink(itemID, row.ID); err != nil {
			return err
		}
		e.journal.RecordRef(reconcile.ActionUnlink, models.TableItemFeature, itemID, name)
	}
	return nil
}

// CreateFeature adds a name to the feature vocabulary.
func (e *Engine) CreateFeature(name string) (models.Feature, error) {
	id, err := e.store.Features.Create(name)
	if err != nil {
		return models.Feature{}, err
	}
	e.journal.Record(reconcile.ActionCreate, models.TableFeature, id)
	return models.Feature{ID: id, Name: name}, nil
}

// RenameFeature renames a feature in place; associations follow it.
func (e *Engine) RenameFeature(currentName, newName string) error {
	row, err := e.store.Features.ByName(currentName)
	if err != nil {
		return err
	}
	if currentName == newName {
		return nil
	}
	if err := e.store.Features.Rename(currentName, newName); err != nil {
		return err
	}
	e.journal.RecordRef(reconcile.ActionUpdate, models.TableFeature, row.ID, newName)
	return nil
}

// DeleteFeature removes a feature that no item references.
func (e *Engine) DeleteFeature(name string) error {
	row, err := e.store.Features.ByName(name)
	if err != nil {
		return err
	}
	if err := e.store.Features.Delete(name); err != nil {
		return err
	}
	e.journal.RecordRef(reconcile.ActionDelete, models.TableFeature, row.ID, name)
	return nil
}
