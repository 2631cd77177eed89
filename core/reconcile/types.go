package reconcile

import (
	"fmt"
	"time"
)

// Kind is the entity-kind label carried by an inbound batch.
type Kind string

const (
	KindProduct         Kind = "Product"
	KindCounterparty    Kind = "Counterparty"
	KindShop            Kind = "Shop"
	KindWorker          Kind = "Worker"
	KindSpecification   Kind = "Specification"
	KindOrder           Kind = "Order"
	KindReturnAndComing Kind = "ReturnAndComing"
	KindRemain          Kind = "Remain"
	KindPrice           Kind = "Price"
)

// Family groups kinds that share a reconciliation algorithm.
type Family string

const (
	// FamilyReference covers flat master data keyed by Ref.
	FamilyReference Family = "reference"
	// FamilyDocument covers headers that own ordered line items.
	FamilyDocument Family = "document"
	// FamilyRegister covers rows keyed by a composite key with a magnitude.
	FamilyRegister Family = "register"
)

// IntegrityViolation describes a record that was skipped instead of applied.
// It never aborts a batch.
type IntegrityViolation struct {
	// Kind is the entity kind of the batch.
	Kind Kind `json:"kind"`

	// Index is the zero-based position of the record in the inbound array.
	Index int `json:"index"`

	// Reason is a human readable explanation.
	Reason string `json:"reason"`
}

func (v IntegrityViolation) String() string {
	return fmt.Sprintf("%s record %d skipped: %s", v.Kind, v.Index, v.Reason)
}

// Outcome counts what a plan did to the store.
type Outcome struct {
	// Applied is the number of inbound records processed without being skipped.
	Applied int `json:"applied"`

	// Inserted counts rows created (reference and document kinds).
	Inserted int `json:"inserted"`

	// Updated counts rows overwritten in place (reference kinds).
	Updated int `json:"updated"`

	// Replaced counts documents deleted and rebuilt.
	Replaced int `json:"replaced"`

	// Upserted counts register rows written by the bulk upsert.
	Upserted int `json:"upserted"`

	// Deleted counts removal requests, including no-ops for absent rows.
	Deleted int `json:"deleted"`

	// Skipped lists records rejected by the composite-key guard.
	Skipped []IntegrityViolation `json:"skipped,omitempty"`
}

// Result is the report of one Reconcile call. It is returned even when the
// batch failed, so callers can surface the batch ID.
type Result struct {
	Outcome

	// BatchID identifies the batch in logs, the audit trail and the archive.
	BatchID string `json:"batch_id"`

	// Kind is the entity-kind label as received.
	Kind Kind `json:"kind"`

	// Attempted is the length of the inbound top-level array.
	Attempted int `json:"attempted"`

	// StartedAt is when the engine began processing the batch (UTC).
	StartedAt time.Time `json:"started_at"`

	// Duration is the wall time spent on the batch.
	Duration time.Duration `json:"duration"`
}
