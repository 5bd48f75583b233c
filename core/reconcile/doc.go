// Package reconcile provides the generic building blocks of the hierarchical diff used to
// make persisted child collections match a caller-supplied desired collection.
//
// The package is storage-agnostic. It knows nothing about restaurants or menus; it only
// classifies keyed entities and records what the caller did about them.
//
// # Architecture
//
// 1. ID: the identity sum type. An entity is Pending until first persisted and Persisted(n)
//    afterwards; the zero value is Pending and JSON null decodes to Pending.
//
// 2. Classify: one level of reconciliation. Given desired and current children it returns a
//    Plan of Added (pending), Updated (matched by identifier) and Removed (current children
//    whose identifier is not desired). Duplicate desired identifiers are InvalidArgument and
//    identifiers that match no current child are NotFound; both are detected before the
//    plan is returned so no write happens at a level that cannot be classified.
//
// 3. Difference / Distinct: set arithmetic over natural keys, used for many-to-many
//    association sync.
//
// 4. Journal: an ordered log of the create/update/delete/link/unlink operations issued while
//    applying plans, with an aggregate Summary. Dry runs return the journal of a rolled back
//    transaction.
//
// # Usage Example
//
//	plan, err := reconcile.Classify(desired.Menus, currentMenus)
//	if err != nil {
//	    return err
//	}
//	for _, m := range plan.Removed { /* cascade delete */ }
//	for _, m := range plan.Added   { /* create top-down */ }
//	for _, p := range plan.Updated { /* recurse, then update scalars */ }
package reconcile
