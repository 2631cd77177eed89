package reconcile

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ReferenceStrategy reconciles flat master data keyed by Ref.
// R is the wire record and M the persisted row.
type ReferenceStrategy[R ReferenceRecord[M], M any] struct {
	kind Kind
}

// NewReferenceStrategy creates the strategy for a reference kind.
func NewReferenceStrategy[R ReferenceRecord[M], M any](kind Kind) *ReferenceStrategy[R, M] {
	return &ReferenceStrategy[R, M]{kind: kind}
}

func (s *ReferenceStrategy[R, M]) Kind() Kind { return s.kind }

func (s *ReferenceStrategy[R, M]) Family() Family { return FamilyReference }

func (s *ReferenceStrategy[R, M]) Plan(payload []byte) (Plan, error) {
	records, err := Decode[R](s.kind, payload)
	if err != nil {
		return nil, err
	}
	if err := validateAll(s.kind, records); err != nil {
		return nil, err
	}
	return &referencePlan[R, M]{kind: s.kind, records: records}, nil
}

type referencePlan[R ReferenceRecord[M], M any] struct {
	kind    Kind
	records []R
}

// Apply processes records in arrival order so a later record for the same Ref
// sees the effect of an earlier one.
func (p *referencePlan[R, M]) Apply(ctx context.Context, tx *gorm.DB) (*Outcome, error) {
	tx = tx.WithContext(ctx)
	outcome := &Outcome{}

	for _, rec := range p.records {
		var existing M
		found := true
		err := tx.Where(refColumn+" = ?", rec.RecordKey()).Take(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, storageErr(p.kind, "lookup", err)
			}
			found = false
		}

		switch {
		case rec.PhysicallyDeleted():
			if found {
				if err := tx.Delete(&existing).Error; err != nil {
					return nil, storageErr(p.kind, "delete", err)
				}
			}
			outcome.Deleted++
		case found:
			row := rec.ToModel()
			// Save writes every column, zero values included.
			if err := tx.Save(&row).Error; err != nil {
				return nil, storageErr(p.kind, "update", err)
			}
			outcome.Updated++
		default:
			row := rec.ToModel()
			if err := tx.Create(&row).Error; err != nil {
				return nil, storageErr(p.kind, "insert", err)
			}
			outcome.Inserted++
		}
		outcome.Applied++
	}

	return outcome, nil
}
