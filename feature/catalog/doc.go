// Package catalog exposes the restaurant catalog over HTTP.
//
// The Service runs every call in its own transaction. Mutating calls build an
// engine.Engine on that transaction, return its journal alongside the resulting tree, and
// honour reconcile.Options: a dry run executes the whole reconciliation and then rolls the
// transaction back.
//
// # Routes
//
//	/restaurants  GET, GET /:id, PUT /:id, PUT, POST, POST /:id/menus, DELETE /:id, DELETE ?ids=
//	/menus        GET ?ids=, GET /:id, PUT /:id, PUT, POST /:id/sections, POST /:id/section, DELETE /:id, DELETE ?ids=
//	/sections     GET ?ids=, GET /:id, PUT /:id, PUT, POST /:id/items, DELETE /:id, DELETE ?ids=
//	/items        GET ?ids=, GET /:id, PUT /:id, PUT, DELETE /:id, DELETE ?ids=
//	/features     GET, PUT /:current/name/:new, PUT, PUT /:name, DELETE /:name
//
// Every mutating route accepts ?dry_run=true. Errors are returned as {"error": "..."} with
// 400 for invalid arguments, 404 for missing entities, 409 for conflicts and 500 otherwise.
package catalog
