// Package catalog holds the reference entities mirrored from the ERP:
// products, counterparties, shops and workers.
//
// Each kind is keyed by the upstream Ref and reconciled record by record with
// full-replace semantics. IsDeleted is the ERP's soft-delete marker and is
// stored as-is; isPhysicallyDeleted on the wire removes the row instead.
package catalog
