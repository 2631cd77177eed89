package reconcile

import (
	"context"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// registerChunkSize bounds the parameters of one bulk statement.
const registerChunkSize = 500

// RegisterStrategy reconciles composite-key registers in bulk.
type RegisterStrategy[R RegisterRecord[M], M any] struct {
	kind    Kind
	columns RegisterColumns
}

// NewRegisterStrategy creates the strategy for a register kind.
func NewRegisterStrategy[R RegisterRecord[M], M any](kind Kind, columns RegisterColumns) *RegisterStrategy[R, M] {
	return &RegisterStrategy[R, M]{kind: kind, columns: columns}
}

func (s *RegisterStrategy[R, M]) Kind() Kind { return s.kind }

func (s *RegisterStrategy[R, M]) Family() Family { return FamilyRegister }

// Plan drops records with an empty key component, collapses duplicate keys
// (last occurrence wins) and splits the rest into deletions and upserts.
func (s *RegisterStrategy[R, M]) Plan(payload []byte) (Plan, error) {
	records, err := Decode[R](s.kind, payload)
	if err != nil {
		return nil, err
	}

	plan := &registerPlan[R, M]{kind: s.kind, columns: s.columns, total: len(records)}

	positions := make(map[[2]string]int, len(records))
	var kept []R
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			plan.skipped = append(plan.skipped, IntegrityViolation{
				Kind:   s.kind,
				Index:  i,
				Reason: violationReason(err),
			})
			continue
		}
		first, second := rec.KeyParts()
		key := [2]string{first, second}
		if pos, seen := positions[key]; seen {
			kept[pos] = rec
			continue
		}
		positions[key] = len(kept)
		kept = append(kept, rec)
	}

	for _, rec := range kept {
		if rec.PhysicallyDeleted() || rec.Magnitude().IsZero() {
			first, second := rec.KeyParts()
			plan.deletes = append(plan.deletes, [2]string{first, second})
			continue
		}
		plan.upserts = append(plan.upserts, rec.ToModel())
	}

	return plan, nil
}

type registerPlan[R RegisterRecord[M], M any] struct {
	kind    Kind
	columns RegisterColumns
	total   int
	skipped []IntegrityViolation
	deletes [][2]string
	upserts []M
}

func (p *registerPlan[R, M]) Apply(ctx context.Context, tx *gorm.DB) (*Outcome, error) {
	tx = tx.WithContext(ctx)

	if err := p.applyDeletes(tx); err != nil {
		return nil, err
	}

	if len(p.upserts) > 0 {
		conflict := clause.OnConflict{
			Columns: []clause.Column{
				{Name: p.columns.Keys[0]},
				{Name: p.columns.Keys[1]},
			},
			DoUpdates: clause.AssignmentColumns(p.columns.Updates),
		}
		if err := tx.Clauses(conflict).CreateInBatches(p.upserts, registerChunkSize).Error; err != nil {
			return nil, storageErr(p.kind, "upsert", err)
		}
	}

	return &Outcome{
		Applied:  p.total - len(p.skipped),
		Upserted: len(p.upserts),
		Deleted:  len(p.deletes),
		Skipped:  p.skipped,
	}, nil
}

// applyDeletes issues one statement per first key component and chunk of
// second components.
func (p *registerPlan[R, M]) applyDeletes(tx *gorm.DB) error {
	if len(p.deletes) == 0 {
		return nil
	}

	grouped := make(map[string][]string)
	for _, key := range p.deletes {
		grouped[key[0]] = append(grouped[key[0]], key[1])
	}
	firsts := make([]string, 0, len(grouped))
	for first := range grouped {
		firsts = append(firsts, first)
	}
	sort.Strings(firsts)

	where := p.columns.Keys[0] + " = ? AND " + p.columns.Keys[1] + " IN ?"
	for _, first := range firsts {
		seconds := grouped[first]
		for start := 0; start < len(seconds); start += registerChunkSize {
			end := min(start+registerChunkSize, len(seconds))
			if err := tx.Where(where, first, seconds[start:end]).Delete(new(M)).Error; err != nil {
				return storageErr(p.kind, "delete", err)
			}
		}
	}
	return nil
}
