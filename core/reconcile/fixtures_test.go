package reconcile

import (
	"context"
	"testing"

	"sync-gateway/core/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

const (
	kindItem  Kind = "Item"
	kindDoc   Kind = "Doc"
	kindStock Kind = "Stock"
)

// testItem is a reference row.
type testItem struct {
	Ref       string `gorm:"primaryKey;size:64"`
	Name      string
	Code      string
	IsDeleted bool
}

type testItemRecord struct {
	Ref                 string `validate:"required"`
	Name                string
	Code                string
	IsDeleted           bool
	IsPhysicallyDeleted bool `json:"isPhysicallyDeleted"`
}

func (r testItemRecord) RecordKey() string       { return r.Ref }
func (r testItemRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }
func (r testItemRecord) ToModel() testItem {
	return testItem{Ref: r.Ref, Name: r.Name, Code: r.Code, IsDeleted: r.IsDeleted}
}

// testDoc is a document header owning testDocLine items.
type testDoc struct {
	Ref    string `gorm:"primaryKey;size:64"`
	Number string
	Items  []testDocLine `gorm:"foreignKey:ParentRef;references:Ref;constraint:OnDelete:CASCADE"`
}

type testDocLine struct {
	ID         uint   `gorm:"primaryKey"`
	ParentRef  string `gorm:"size:64;index"`
	LineNo     int
	ProductRef string
	Unit       *string         `gorm:"not null"`
	Count      decimal.Decimal `gorm:"type:decimal(18,4)"`
}

type testDocRecord struct {
	Ref                 string `validate:"required"`
	Number              string
	IsPhysicallyDeleted bool `json:"isPhysicallyDeleted"`
	Items               []testDocLineRecord
}

type testDocLineRecord struct {
	ParetRef   string
	ProductRef string
	Unit       *string
	Count      decimal.Decimal
}

func (r testDocRecord) RecordKey() string       { return r.Ref }
func (r testDocRecord) PhysicallyDeleted() bool { return r.IsPhysicallyDeleted }
func (r testDocRecord) ToModel() testDoc {
	doc := testDoc{Ref: r.Ref, Number: r.Number}
	for i, item := range r.Items {
		parent := item.ParetRef
		if parent == "" {
			parent = r.Ref
		}
		doc.Items = append(doc.Items, testDocLine{
			ParentRef:  parent,
			LineNo:     i + 1,
			ProductRef: item.ProductRef,
			Unit:       item.Unit,
			Count:      item.Count,
		})
	}
	return doc
}

// testStock is a register row keyed by (site, sku).
type testStock struct {
	Site     string `gorm:"primaryKey;size:64"`
	Sku      string `gorm:"primaryKey;size:64"`
	SiteName string
	Qty      decimal.Decimal `gorm:"type:decimal(18,4)"`
}

type testStockRecord struct {
	Site                string `validate:"required"`
	Sku                 string `validate:"required"`
	SiteName            string
	Qty                 decimal.Decimal
	IsPhysicallyDeleted bool `json:"isPhysicallyDeleted"`
}

func (r testStockRecord) KeyParts() (string, string) { return r.Site, r.Sku }
func (r testStockRecord) PhysicallyDeleted() bool    { return r.IsPhysicallyDeleted }
func (r testStockRecord) Magnitude() decimal.Decimal { return r.Qty }
func (r testStockRecord) ToModel() testStock {
	return testStock{Site: r.Site, Sku: r.Sku, SiteName: r.SiteName, Qty: r.Qty}
}

func newTestRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(NewReferenceStrategy[testItemRecord, testItem](kindItem))
	reg.Register(NewDocumentStrategy[testDocRecord, testDoc](kindDoc))
	reg.Register(NewRegisterStrategy[testStockRecord, testStock](kindStock, RegisterColumns{
		Keys:    [2]string{"site", "sku"},
		Updates: []string{"site_name", "qty"},
	}))
	return reg
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&testItem{}, &testDoc{}, &testDocLine{}, &testStock{}, &SyncHistory{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewEngine(db, newTestRegistry(), zaptest.NewLogger(t), opts...), db
}

// mockRecorder is a testify mock for Recorder.
type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(ctx context.Context, entry *SyncHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
