package models

import "menu-manager/core/reconcile"

// Restaurant is the root of a catalog tree.
type Restaurant struct {
	ID    reconcile.ID `json:"id"`
	Name  string       `json:"name" validate:"notblank"`
	Menus []Menu       `json:"menus" validate:"dive"`
}

// Identity implements reconcile.Keyed.
func (r Restaurant) Identity() reconcile.ID { return r.ID }

// Menu belongs to one restaurant.
type Menu struct {
	ID       reconcile.ID `json:"id"`
	Name     string       `json:"name" validate:"notblank"`
	Sections []Section    `json:"sections" validate:"dive"`
}

// Identity implements reconcile.Keyed.
func (m Menu) Identity() reconcile.ID { return m.ID }

// Section belongs to one menu. Items are ordered by identifier when read back.
type Section struct {
	ID    reconcile.ID `json:"id"`
	Name  string       `json:"name" validate:"notblank"`
	Items []Item       `json:"items" validate:"dive"`
}

// Identity implements reconcile.Keyed.
func (s Section) Identity() reconcile.ID { return s.ID }

// Item belongs to one section and references features by name.
type Item struct {
	ID          reconcile.ID `json:"id"`
	Name        string       `json:"name" validate:"notblank"`
	Description string       `json:"description"`
	Price       float64      `json:"price" validate:"gte=0"`
	Features    []string     `json:"features" validate:"dive,notblank"`
}

// Identity implements reconcile.Keyed.
func (i Item) Identity() reconcile.ID { return i.ID }

// SameScalars reports whether two items agree on every stored column.
func (i Item) SameScalars(other Item) bool {
	return i.Name == other.Name && i.Description == other.Description && i.Price == other.Price
}

// Feature is an entry of the shared feature vocabulary.
type Feature struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FeatureUpdate renames a feature.
type FeatureUpdate struct {
	CurrentName string `json:"currentName" validate:"notblank"`
	NewName     string `json:"newName" validate:"notblank"`
}
