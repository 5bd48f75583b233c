// Package models defines the catalog tree exchanged with callers and the row models that map
// the relational schema.
//
// Tree types (Restaurant, Menu, Section, Item) carry a reconcile.ID, so a JSON document can
// mix new children ("id": null or absent) with persisted ones. Items reference features by
// name only.
//
// Row types carry explicit gorm column and type tags. They are the source of truth for
// migration and for the schema integrity check, and their identifiers are never
// auto-incremented: the store allocates them.
package models
