package engine

import (
	"menu-manager/core/apperror"
	"menu-manager/core/reconcile"
	"menu-manager/feature/catalog/models"
	"menu-manager/feature/catalog/store"
)

// Engine reconciles persisted catalog trees against desired ones.
//
// An Engine is bound to one store, normally a transaction, and records every operation it
// issues in its journal. It is not safe for concurrent use.
type Engine struct {
	store   *store.Store
	journal *reconcile.Journal
}

// New creates an engine. A nil journal is replaced by a fresh one.
func New(s *store.Store, journal *reconcile.Journal) *Engine {
	if journal == nil {
		journal = &reconcile.Journal{}
	}
	return &Engine{store: s, journal: journal}
}

// Journal returns the operations issued so far.
func (e *Engine) Journal() *reconcile.Journal {
	return e.journal
}

// CreateRestaurant inserts a new restaurant with all of its descendants.
func (e *Engine) CreateRestaurant(r models.Restaurant) (models.Restaurant, error) {
	if !r.ID.IsPending() {
		return r, apperror.InvalidArgument("restaurant id must be empty to create a new restaurant")
	}

	id, err := e.store.Restaurants.Create(r.Name)
	if err != nil {
		return r, err
	}
	e.journal.Record(reconcile.ActionCreate, models.TableRestaurant, id)

	menus, err := e.reconcileMenus(id, r.Menus, nil)
	if err != nil {
		return r, err
	}

	return models.Restaurant{ID: reconcile.Persisted(id), Name: r.Name, Menus: menus}, nil
}

// UpdateRestaurant makes the persisted restaurant match r. Menus missing from r are deleted
// with all of their descendants.
func (e *Engine) UpdateRestaurant(r models.Restaurant) (models.Restaurant, error) {
	id, ok := r.ID.Value()
	if !ok {
		return r, apperror.InvalidArgument("restaurant id is required to update a restaurant")
	}

	current, err := e.store.Restaurants.Get(id)
	if err != nil {
		return r, err
	}

	currentMenus, err := e.store.MenusOf(id)
	if err != nil {
		return r, err
	}

	menus, err := e.reconcileMenus(id, r.Menus, currentMenus)
	if err != nil {
		return r, err
	}

	if current.Name != r.Name {
		if err := e.store.Restaurants.UpdateName(id, r.Name); err != nil {
			return r, err
		}
		e.journal.Record(reconcile.ActionUpdate, models.TableRestaurant, id)
	}

	return models.Restaurant{ID: r.ID, Name: r.Name, Menus: menus}, nil
}

// DeleteRestaurant removes a restaurant after all of its descendants.
func (e *Engine) DeleteRestaurant(id int) error {
	if _, err := e.store.Restaurants.Get(id); err != nil {
		return err
	}

	menus, err := e.store.MenusOf(id)
	if err != nil {
		return err
	}
	if _, err := e.reconcileMenus(id, nil, menus); err != nil {
		return err
	}

	if err := e.store.Restaurants.Delete(id); err != nil {
		return err
	}
	e.journal.Record(reconcile.ActionDelete, models.TableRestaurant, id)
	return nil
}

// AddMenu creates a new menu with its descendants under an existing restaurant.
func (e *Engine) AddMenu(restaurantID int, m models.Menu) (models.Menu, error) {
	if !m.ID.IsPending() {
		return m, apperror.InvalidArgument("menu id must be empty to create a new menu")
	}
	return e.createMenu(restaurantID, m)
}

// UpdateMenu makes the persisted menu match m.
func (e *Engine) UpdateMenu(m models.Menu) (models.Menu, error) {
	id, ok := m.ID.Value()
	if !ok {
		return m, apperror.InvalidArgument("menu id is required to update a menu")
	}

	row, err := e.store.Menus.Get(id)
	if err != nil {
		return m, err
	}
	return e.updateMenu(m, row.ToDomain())
}

// DeleteMenu removes a menu after all of its descendants.
func (e *Engine) DeleteMenu(id int) error {
	row, err := e.store.Menus.Get(id)
	if err != nil {
		return err
	}
	return e.removeMenu(row.ToDomain())
}

// AddSection creates a new section with its items under an existing menu.
func (e *Engine) AddSection(menuID int, s models.Section) (models.Section, error) {
	if !s.ID.IsPending() {
		return s, apperror.InvalidArgument("section id must be empty to create a new section")
	}
	return e.createSection(menuID, s)
}

// UpdateSection makes the persisted section match s.
func (e *Engine) UpdateSection(s models.Section) (models.Section, error) {
	id, ok := s.ID.Value()
	if !ok {
		return s, apperror.InvalidArgument("section id is required to update a section")
	}

	row, err := e.store.Sections.Get(id)
	if err != nil {
		return s, err
	}
	return e.updateSection(s, row.ToDomain())
}

// DeleteSection removes a section after all of its items.
func (e *Engine) DeleteSection(id int) error {
	row, err := e.store.Sections.Get(id)
	if err != nil {
		return err
	}
	return e.removeSection(row.ToDomain())
}

// AddItem creates a new item under an existing section and links its features.
func (e *Engine) AddItem(sectionID int, item models.Item) (models.Item, error) {
	if !item.ID.IsPending() {
		return item, apperror.InvalidArgument("item id must be empty to create a new item")
	}
	return e.createItem(sectionID, item)
}

// UpdateItem makes the persisted item match item, features included.
func (e *Engine) UpdateItem(item models.Item) (models.Item, error) {
	id, ok := item.ID.Value()
	if !ok {
		return item, apperror.InvalidArgument("item id is required to update an item")
	}

	current, err := e.store.ItemTree(id)
	if err != nil {
		return item, err
	}
	return e.updateItem(item, current)
}

// DeleteItem releases an item's features and removes it.
func (e *Engine) DeleteItem(id int) error {
	current, err := e.store.ItemTree(id)
	if err != nil {
		return err
	}
	return e.removeItem(current)
}
