// Package store is the relational persistence layer of the catalog.
//
// It provides the identifier allocator, the existence validator, and one repository per
// entity (restaurant, menu, section, item, feature), all issuing plain GORM operations keyed
// by identifier. Feature rows are keyed by their unique name.
//
// # Identifiers
//
// Identifiers are never auto-incremented by the database. Allocator.Next reads MAX(id) and
// adds one, so the first row of a table gets 0. Allocation per table is serialized and the
// allocator remembers what it handed out, so in-process writers never collide.
//
// # Errors
//
// Repositories validate referenced rows before writing and translate GORM errors once:
// gorm.ErrRecordNotFound becomes NotFound, duplicated keys and foreign key rejections become
// Conflict. Unfiltered lists are capped at MaxListRows.
//
// # Transactions
//
// A Store wraps either the application connection or a transaction. Store.Transaction
// derives a store bound to a new transaction and sharing the same allocator.
package store
