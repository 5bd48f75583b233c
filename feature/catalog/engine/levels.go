package engine

import (
	"menu-manager/core/reconcile"
	"menu-manager/feature/catalog/models"
	"menu-manager/feature/catalog/store"
)

// Every level runs the same steps: classify (no writes yet), remove, add, update.
// Results follow the desired order, with created children carrying their new identifiers.

func (e *Engine) reconcileMenus(restaurantID int, desired, current []models.Menu) ([]models.Menu, error) {
	plan, err := reconcile.Classify(desired, current)
	if err != nil {
		return nil, err
	}

	for _, m := range plan.Removed {
		if err := e.removeMenu(m); err != nil {
			return nil, err
		}
	}

	added := make([]models.Menu, 0, len(plan.Added))
	for _, m := range plan.Added {
		created, err := e.createMenu(restaurantID, m)
		if err != nil {
			return nil, err
		}
		added = append(added, created)
	}

	updated := make([]models.Menu, 0, len(plan.Updated))
	for _, p := range plan.Updated {
		result, err := e.updateMenu(p.Desired, p.Current)
		if err != nil {
			return nil, err
		}
		updated = append(updated, result)
	}

	return merge(desired, added, updated), nil
}

func (e *Engine) createMenu(restaurantID int, m models.Menu) (models.Menu, error) {
	id, err := e.store.Menus.Create(restaurantID, m.Name)
	if err != nil {
		return m, err
	}
	e.journal.Record(reconcile.ActionCreate, models.TableMenu, id)

	sections, err := e.reconcileSections(id, m.Sections, nil)
	if err != nil {
		return m, err
	}
	return models.Menu{ID: reconcile.Persisted(id), Name: m.Name, Sections: sections}, nil
}

func (e *Engine) updateMenu(desired, current models.Menu) (models.Menu, error) {
	id, _ := current.ID.Value()

	currentSections, err := e.store.SectionsOf(id)
	if err != nil {
		return desired, err
	}
	sections, err := e.reconcileSections(id, desired.Sections, currentSections)
	if err != nil {
		return desired, err
	}

	if desired.Name != current.Name {
		if err := e.store.Menus.UpdateName(id, desired.Name); err != nil {
			return desired, err
		}
		e.journal.Record(reconcile.ActionUpdate, models.TableMenu, id)
	}
	return models.Menu{ID: current.ID, Name: desired.Name, Sections: sections}, nil
}

func (e *Engine) removeMenu(m models.Menu) error {
	id, _ := m.ID.Value()

	sections, err := e.store.SectionsOf(id)
	if err != nil {
		return err
	}
	if _, err := e.reconcileSections(id, nil, sections); err != nil {
		return err
	}

	if err := e.store.Menus.Delete(id); err != nil {
		return err
	}
	e.journal.Record(reconcile.ActionDelete, models.TableMenu, id)
	return nil
}

func (e *Engine) reconcileSections(menuID int, desired, current []models.Section) ([]models.Section, error) {
	plan, err := reconcile.Classify(desired, current)
	if err != nil {
		return nil, err
	}

	for _, s := range plan.Removed {
		if err := e.removeSection(s); err != nil {
			return nil, err
		}
	}

	added := make([]models.Section, 0, len(plan.Added))
	for _, s := range plan.Added {
		created, err := e.createSection(menuID, s)
		if err != nil {
			return nil, err
		}
		added = append(added, created)
	}

	updated := make([]models.Section, 0, len(plan.Updated))
	for _, p := range plan.Updated {
		result, err := e.updateSection(p.Desired, p.Current)
		if err != nil {
			return nil, err
		}
		updated = append(updated, result)
	}

	return merge(desired, added, updated), nil
}

func (e *Engine) createSection(menuID int, s models.Section) (models.Section, error) {
	id, err := e.store.Sections.Create(menuID, s.Name)
	if err != nil {
		return s, err
	}
	e.journal.Record(reconcile.ActionCreate, models.TableSection, id)

	items, err := e.reconcileItems(id, s.Items, nil)
	if err != nil {
		return s, err
	}
	return models.Section{ID: reconcile.Persisted(id), Name: s.Name, Items: items}, nil
}

func (e *Engine) updateSection(desired, current models.Section) (models.Section, error) {
	id, _ := current.ID.Value()

	currentItems, err := e.store.ItemsOf(id)
	if err != nil {
		return desired, err
	}
	items, err := e.reconcileItems(id, desired.Items, currentItems)
	if err != nil {
		return desired, err
	}

	if desired.Name != current.Name {
		if err := e.store.Sections.UpdateName(id, desired.Name); err != nil {
			return desired, err
		}
		e.journal.Record(reconcile.ActionUpdate, models.TableSection, id)
	}
	return models.Section{ID: current.ID, Name: desired.Name, Items: items}, nil
}

func (e *Engine) removeSection(s models.Section) error {
	id, _ := s.ID.Value()

	items, err := e.store.ItemsOf(id)
	if err != nil {
		return err
	}
	if _, err := e.reconcileItems(id, nil, items); err != nil {
		return err
	}

	if err := e.store.Sections.Delete(id); err != nil {
		return err
	}
	e.journal.Record(reconcile.ActionDelete, models.TableSection, id)
	return nil
}

// reconcileItems expects current items with their feature names loaded.
func (e *Engine) reconcileItems(sectionID int, desired, current []models.Item) ([]models.Item, error) {
	plan, err := reconcile.Classify(desired, current)
	if err != nil {
		return nil, err
	}

	for _, item := range plan.Removed {
		if err := e.removeItem(item); err != nil {
			return nil, err
		}
	}

	added := make([]models.Item, 0, len(plan.Added))
	for _, item := range plan.Added {
		created, err := e.createItem(sectionID, item)
		if err != nil {
			return nil, err
		}
		added = append(added, created)
	}

	updated := make([]models.Item, 0, len(plan.Updated))
	for _, p := range plan.Updated {
		result, err := e.updateItem(p.Desired, p.Current)
		if err != nil {
			return nil, err
		}
		updated = append(updated, result)
	}

	return merge(desired, added, updated), nil
}

func (e *Engine) createItem(sectionID int, item models.Item) (models.Item, error) {
	id, err := e.store.Items.Create(sectionID, fields(item))
	if err != nil {
		return item, err
	}
	e.journal.Record(reconcile.ActionCreate, models.TableItem, id)

	features := reconcile.Distinct(item.Features)
	if len(features) > 0 {
		if err := e.associate(id, features); err != nil {
			return item, err
		}
	}

	created := item
	created.ID = reconcile.Persisted(id)
	created.Features = nonNil(features)
	return created, nil
}

func (e *Engine) updateItem(desired, current models.Item) (models.Item, error) {
	id, _ := current.ID.Value()

	features := reconcile.Distinct(desired.Features)
	if err := e.SyncFeatures(id, features, current.Features); err != nil {
		return desired, err
	}

	if !desired.SameScalars(current) {
		if err := e.store.Items.Update(id, fields(desired)); err != nil {
			return desired, err
		}
		e.journal.Record(reconcile.ActionUpdate, models.TableItem, id)
	}

	result := desired
	result.ID = current.ID
	result.Features = nonNil(features)
	return result, nil
}

func (e *Engine) removeItem(item models.Item) error {
	id, _ := item.ID.Value()

	if len(item.Features) > 0 {
		if err := e.disassociate(id, item.Features); err != nil {
			return err
		}
	}

	if err := e.store.Items.Delete(id); err != nil {
		return err
	}
	e.journal.Record(reconcile.ActionDelete, models.TableItem, id)
	return nil
}

func fields(item models.Item) store.ItemFields {
	return store.ItemFields{Name: item.Name, Description: item.Description, Price: item.Price}
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

// merge rebuilds the desired order from the added and updated results, which each keep
// the relative order of their desired children.
func merge[T reconcile.Keyed](desired, added, updated []T) []T {
	out := make([]T, 0, len(desired))
	var a, u int
	for _, child := range desired {
		if child.Identity().IsPending() {
			out = append(out, added[a])
			a++
			continue
		}
		out = append(out, updated[u])
		u++
	}
	return out
}
