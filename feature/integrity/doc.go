// Package integrity provides health checks for the infrastructure the
// gateway depends on.
//
// # Checks Provided
//
//   - Schema: every gateway table exists and carries the columns of its model,
//     with compatible types for explicitly typed columns (decimals).
//   - Archive: the payload archive bucket exists when archiving is enabled.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check (supports ?fix=true).
package integrity
