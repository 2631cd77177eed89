// Package documents holds the ERP documents the gateway mirrors:
// specifications, orders and returns/comings.
//
// A document is a header keyed by Ref plus ordered line items. Items have no
// identity of their own upstream, so every inbound document replaces the
// stored one wholesale: the old header and items are deleted and the new ones
// inserted in the same transaction. LineNo records each item's position in the
// inbound array.
package documents
