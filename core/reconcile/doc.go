// Package reconcile applies inbound ERP snapshot batches to the relational store.
//
// A batch is a JSON array of records of a single entity kind. The engine
// resolves the kind to a strategy through the Registry, lets the strategy plan
// the batch (decode and validate, no store access), applies the plan inside one
// database transaction and writes an audit row describing the outcome.
//
// # Strategy families
//
// Three families cover every kind the gateway accepts:
//
//  1. Reference: flat master data keyed by Ref. Records are inserted, fully
//     overwritten or removed one by one.
//
//  2. Document: a header keyed by Ref that owns ordered items. An existing
//     document is always deleted together with its items and rebuilt from the
//     inbound record. Items are never patched in place.
//
//  3. Register: rows keyed by a two-part composite key carrying a magnitude.
//     A magnitude of exactly zero means the row must not exist. Records are
//     de-duplicated and applied as one bulk delete plus one bulk upsert.
//
// # Failure model
//
// DecodeError, StorageError and ErrUnknownEntityKind abort the whole batch and
// roll back every change. Register records with an empty key component are
// skipped and reported as IntegrityViolation values on the Result. Audit writes
// are best-effort and never change the outcome of a batch.
//
// # Usage Example
//
//	registry := reconcile.NewRegistry()
//	registry.Register(reconcile.NewReferenceStrategy[catalog.ProductRecord, catalog.Product](reconcile.KindProduct))
//
//	engine := reconcile.NewEngine(db, registry, logger)
//	result, err := engine.Reconcile(ctx, "Product", payload)
package reconcile
