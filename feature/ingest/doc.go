// Package ingest is the ERP-facing side of the gateway.
//
// The ERP posts an envelope to POST /api/sync/push:
//
//	{"Source": "erp", "Target": "gateway", "DataType": "Remain", "Payload": "[...]"}
//
// Payload is the JSON array of records, usually double-encoded as a string.
// The service hands it to the reconciliation engine, archives the raw array
// when archiving is enabled and drops the cached dashboard counts after a
// successful batch.
//
// Status codes: 200 when the batch was applied (skipped register records are
// listed in the response), 400 for malformed payloads and unknown kinds, 500
// for storage failures. Every outcome is recorded in the audit trail.
//
// Archived batches can be listed with GET /api/sync/archive and re-applied
// with POST /api/sync/replay.
package ingest
