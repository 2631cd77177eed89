package reconcile

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentStrategy reconciles headers that own ordered items. M must declare
// its items as a has-many association keyed on the header Ref.
type DocumentStrategy[R DocumentRecord[M], M any] struct {
	kind Kind
}

// NewDocumentStrategy creates the strategy for a document kind.
func NewDocumentStrategy[R DocumentRecord[M], M any](kind Kind) *DocumentStrategy[R, M] {
	return &DocumentStrategy[R, M]{kind: kind}
}

func (s *DocumentStrategy[R, M]) Kind() Kind { return s.kind }

func (s *DocumentStrategy[R, M]) Family() Family { return FamilyDocument }

func (s *DocumentStrategy[R, M]) Plan(payload []byte) (Plan, error) {
	records, err := Decode[R](s.kind, payload)
	if err != nil {
		return nil, err
	}
	if err := validateAll(s.kind, records); err != nil {
		return nil, err
	}
	return &documentPlan[R, M]{kind: s.kind, records: records}, nil
}

type documentPlan[R DocumentRecord[M], M any] struct {
	kind    Kind
	records []R
}

// Apply deletes any stored document with the same Ref, items first, and then
// inserts the inbound header with its items.
func (p *documentPlan[R, M]) Apply(ctx context.Context, tx *gorm.DB) (*Outcome, error) {
	tx = tx.WithContext(ctx)
	outcome := &Outcome{}

	for _, rec := range p.records {
		var existing M
		found := true
		err := tx.Preload(clause.Associations).Where(refColumn+" = ?", rec.RecordKey()).Take(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, storageErr(p.kind, "lookup", err)
			}
			found = false
		}

		if found {
			if err := tx.Select(clause.Associations).Delete(&existing).Error; err != nil {
				return nil, storageErr(p.kind, "delete", err)
			}
		}

		outcome.Applied++
		if rec.PhysicallyDeleted() {
			outcome.Deleted++
			continue
		}

		row := rec.ToModel()
		if err := tx.Create(&row).Error; err != nil {
			return nil, storageErr(p.kind, "insert", err)
		}
		if found {
			outcome.Replaced++
		} else {
			outcome.Inserted++
		}
	}

	return outcome, nil
}
