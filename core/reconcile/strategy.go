package reconcile

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Strategy turns a raw batch of one kind into a Plan.
type Strategy interface {
	// Kind returns the entity-kind label the strategy serves.
	Kind() Kind

	// Family returns the reconciliation family of the kind.
	Family() Family

	// Plan decodes and validates payload without touching the store.
	Plan(payload []byte) (Plan, error)
}

// Plan is a decoded batch ready to be applied.
type Plan interface {
	// Apply writes the batch through tx. The caller owns the transaction and
	// rolls it back when Apply returns an error.
	Apply(ctx context.Context, tx *gorm.DB) (*Outcome, error)
}

// ReferenceRecord is an inbound reference entity decoded from the wire.
type ReferenceRecord[M any] interface {
	// RecordKey returns the upstream Ref.
	RecordKey() string

	// PhysicallyDeleted reports whether the row must be removed entirely.
	PhysicallyDeleted() bool

	// ToModel maps the record onto its persisted row.
	ToModel() M
}

// DocumentRecord is an inbound document header with its items.
type DocumentRecord[M any] interface {
	RecordKey() string
	PhysicallyDeleted() bool

	// ToModel maps the header and its items. Items must have their parent
	// reference and line number populated.
	ToModel() M
}

// RegisterRecord is an inbound register row.
type RegisterRecord[M any] interface {
	// KeyParts returns the two components of the composite key.
	KeyParts() (string, string)

	PhysicallyDeleted() bool

	// Magnitude returns the register value. Exactly zero means absence.
	Magnitude() decimal.Decimal

	ToModel() M
}

// RegisterColumns names the storage columns a register strategy writes.
type RegisterColumns struct {
	// Keys are the composite key columns, in KeyParts order.
	Keys [2]string

	// Updates are the columns overwritten when the key already exists.
	Updates []string
}

// refColumn is the key column of every reference and document table.
const refColumn = "ref"
