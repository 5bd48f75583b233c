package store

import (
	"menu-manager/feature/catalog/models"
)

// MenusOf returns the menus of a restaurant without their sections.
func (s *Store) MenusOf(restaurantID int) ([]models.Menu, error) {
	rows, err := s.Menus.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Menu, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}
	return out, nil
}

// SectionsOf returns the sections of a menu without their items.
func (s *Store) SectionsOf(menuID int) ([]models.Section, error) {
	rows, err := s.Sections.ListByMenu(menuID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Section, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}
	return out, nil
}

// ItemsOf returns the items of a section with their feature names.
func (s *Store) ItemsOf(sectionID int) ([]models.Item, error) {
	rows, err := s.Items.ListBySection(sectionID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Item, 0, len(rows))
	for _, row := range rows {
		item, err := s.item(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// RestaurantTree loads a restaurant with every descendant.
func (s *Store) RestaurantTree(id int) (models.Restaurant, error) {
	row, err := s.Restaurants.Get(id)
	if err != nil {
		return models.Restaurant{}, err
	}
	return s.restaurantTree(*row)
}

// MenuTree loads a menu with every descendant.
func (s *Store) MenuTree(id int) (models.Menu, error) {
	row, err := s.Menus.Get(id)
	if err != nil {
		return models.Menu{}, err
	}
	return s.menuTree(*row)
}

// SectionTree loads a section with its items.
func (s *Store) SectionTree(id int) (models.Section, error) {
	row, err := s.Sections.Get(id)
	if err != nil {
		return models.Section{}, err
	}
	return s.sectionTree(*row)
}

// ItemTree loads an item with its feature names.
func (s *Store) ItemTree(id int) (models.Item, error) {
	row, err := s.Items.Get(id)
	if err != nil {
		return models.Item{}, err
	}
	return s.item(*row)
}

// RestaurantTrees loads every restaurant, up to MaxListRows.
func (s *Store) RestaurantTrees() ([]models.Restaurant, error) {
	rows, err := s.Restaurants.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Restaurant, 0, len(rows))
	for _, row := range rows {
		tree, err := s.restaurantTree(row)
		if err != nil {
			return nil, err
		}
		out = append(out, tree)
	}
	return out, nil
}

// MenuTrees loads every menu, up to MaxListRows.
func (s *Store) MenuTrees() ([]models.Menu, error) {
	rows, err := s.Menus.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Menu, 0, len(rows))
	for _, row := range rows {
		tree, err := s.menuTree(row)
		if err != nil {
			return nil, err
		}
		out = append(out, tree)
	}
	return out, nil
}

// SectionTrees loads every section, up to MaxListRows.
func (s *Store) SectionTrees() ([]models.Section, error) {
	rows, err := s.Sections.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Section, 0, len(rows))
	for _, row := range rows {
		tree, err := s.sectionTree(row)
		if err != nil {
			return nil, err
		}
		out = append(out, tree)
	}
	return out, nil
}

// ItemTrees loads every item, up to MaxListRows.
func (s *Store) ItemTrees() ([]models.Item, error) {
	rows, err := s.Items.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Item, 0, len(rows))
	for _, row := range rows {
		item, err := s.item(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *Store) restaurantTree(row models.RestaurantRow) (models.Restaurant, error) {
	r := row.ToDomain()
	menus, err := s.Menus.ListByRestaurant(row.ID)
	if err != nil {
		return r, err
	}
	for _, m := range menus {
		tree, err := s.menuTree(m)
		if err != nil {
			return r, err
		}
		r.Menus = append(r.Menus, tree)
	}
	return r, nil
}

func (s *Store) menuTree(row models.MenuRow) (models.Menu, error) {
	m := row.ToDomain()
	sections, err := s.Sections.ListByMenu(row.ID)
	if err != nil {
		return m, err
	}
	for _, sec := range sections {
		tree, err := s.sectionTree(sec)
		if err != nil {
			return m, err
		}
		m.Sections = append(m.Sections, tree)
	}
	return m, nil
}

func (s *Store) sectionTree(row models.SectionRow) (models.Section, error) {
	sec := row.ToDomain()
	items, err := s.ItemsOf(row.ID)
	if err != nil {
		return sec, err
	}
	sec.Items = items
	return sec, nil
}

func (s *Store) item(row models.ItemRow) (models.Item, error) {
	names, err := s.Items.FeatureNames(row.ID)
	if err != nil {
		return models.Item{}, err
	}
	return row.ToDomain(names), nil
}
