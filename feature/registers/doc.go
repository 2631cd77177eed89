// Package registers holds the ERP accumulation registers: stock remains and
// prices.
//
// Rows are keyed by a two-part composite key and carry one magnitude
// (Quantity or PriceValue). A magnitude of exactly zero means the row must not
// exist, so it is deleted rather than stored. Records with an empty key
// component are skipped and reported, never stored.
package registers
