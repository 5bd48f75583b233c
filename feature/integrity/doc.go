// Package integrity provides system health checks for the catalog service.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database matches the catalog row models (tables, columns, types).
//   - Storage: Checks that the snapshot bucket exists and counts the snapshots it holds.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
