package snapshot

import (
	"menu-manager/core/reconcile"
	"menu-manager/feature/catalog/models"
)

// Detach returns a copy of r in which every node is pending.
func Detach(r models.Restaurant) models.Restaurant {
	out := models.Restaurant{ID: reconcile.Pending(), Name: r.Name, Menus: make([]models.Menu, len(r.Menus))}
	for i, m := range r.Menus {
		menu := models.Menu{Name: m.Name, Sections: make([]models.Section, len(m.Sections))}
		for j, s := range m.Sections {
			section := models.Section{Name: s.Name, Items: make([]models.Item, len(s.Items))}
			for k, item := range s.Items {
				item.ID = reconcile.Pending()
				item.Features = append([]string(nil), item.Features...)
				section.Items[k] = item
			}
			menu.Sections[j] = section
		}
		out.Menus[i] = menu
	}
	return out
}
