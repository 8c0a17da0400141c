// Package integrity provides health checks for the bulk editor's backing
// services.
//
// # Checks Provided
//
//   - Schema: compares the products, bulk_progress and taxonomy_properties
//     tables with the column and type tags of their gorm models.
//   - Storage: checks that the image bucket and its "images/" folder exist.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true to migrate).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
