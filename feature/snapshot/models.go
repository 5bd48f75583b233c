package snapshot

import (
	"time"

	"menu-manager/feature/catalog/models"
)

// FormatVersion is written into every document and checked on import.
const FormatVersion = 1

// Document is the object stored for one restaurant.
type Document struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Restaurant models.Restaurant `json:"restaurant"`
}

// Entry describes a stored snapshot.
type Entry struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// ImportOptions controls how a snapshot is applied.
type ImportOptions struct {
	// AsNew drops every stored identity so the tree is inserted as new rows.
	AsNew bool
	// DryRun rolls the catalog transaction back after reconciling.
	DryRun bool
}
