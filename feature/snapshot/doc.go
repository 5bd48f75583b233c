// Package snapshot exports restaurant trees to object storage and imports them back.
//
// Each restaurant is stored as an indented JSON Document under
// <snapshot_prefix>/restaurant-<id>.json in the configured bucket; the bucket is created on
// first export. Importing reconciles the catalog with the document through the catalog
// service, so a snapshot of an existing restaurant restores it in place while AsNew clones
// it into fresh rows.
//
// # Routes
//
//	GET    /snapshots                   list stored snapshots
//	POST   /snapshots/restaurants/:id   export one restaurant
//	POST   /snapshots/restaurants       export every restaurant
//	POST   /snapshots/import?key=       import (as_new, dry_run)
//	DELETE /snapshots?key=              remove a snapshot
package snapshot
