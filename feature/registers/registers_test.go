package registers

import (
	"context"
	"testing"

	"sync-gateway/core/database"
	"sync-gateway/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupEngine(t *testing.T) (*reconcile.Engine, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(append(Models(), reconcile.Models()...)...))

	reg := reconcile.NewRegistry()
	Register(reg)
	return reconcile.NewEngine(db, reg, zap.NewNop()), db
}

func TestRemain_ZeroQuantityRemovesRow(t *testing.T) {
	engine, db := setupEngine(t)
	ctx := context.Background()

	_, err := engine.Reconcile(ctx, "Remain", []byte(`[{"Subdivision":"S1","ProductUid":"PR1","Quantity":5}]`))
	require.NoError(t, err)

	var count int64
	db.Model(&Remain{}).Where("subdivision = ? AND product_uid = ?", "S1", "PR1").Count(&count)
	assert.Equal(t, int64(1), count)

	_, err = engine.Reconcile(ctx, "Remain", []byte(`[{"Subdivision":"S1","ProductUid":"PR1","Quantity":0}]`))
	require.NoError(t, err)

	db.Model(&Remain{}).Where("subdivision = ? AND product_uid = ?", "S1", "PR1").Count(&count)
	assert.Zero(t, count)
}

func TestPrice_WireNameAndUpsert(t *testing.T) {
	engine, db := setupEngine(t)
	ctx := context.Background()

	_, err := engine.Reconcile(ctx, "Price", []byte(`[{"PriceTypeRef":"retail","ProductRef":"P1","Price":"19.99","Currency":"UAH"}]`))
	require.NoError(t, err)
	_, err = engine.Reconcile(ctx, "Price", []byte(`[{"PriceTypeRef":"retail","ProductRef":"P1","Price":21,"Currency":"UAH"}]`))
	require.NoError(t, err)

	var prices []Price
	require.NoError(t, db.Find(&prices).Error)
	require.Len(t, prices, 1)
	assert.True(t, prices[0].PriceValue.Equal(decimal.NewFromInt(21)))
	assert.Equal(t, "UAH", prices[0].Currency)
}

func TestPrice_EmptyKeySkipped(t *testing.T) {
	engine, db := setupEngine(t)

	res, err := engine.Reconcile(context.Background(), "Price", []byte(`[
		{"PriceTypeRef":"","ProductRef":"P1","Price":1},
		{"PriceTypeRef":"retail","ProductRef":"P2","Price":2}]`))
	require.NoError(t, err)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, reconcile.KindPrice, res.Skipped[0].Kind)
	assert.Equal(t, 0, res.Skipped[0].Index)

	var count int64
	db.Model(&Price{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRemain_BulkAcrossSubdivisions(t *testing.T) {
	engine, db := setupEngine(t)
	ctx := context.Background()

	_, err := engine.Reconcile(ctx, "Remain", []byte(`[
		{"Subdivision":"S1","ProductUid":"A","Quantity":1},
		{"Subdivision":"S1","ProductUid":"B","Quantity":2},
		{"Subdivision":"S2","ProductUid":"A","Quantity":3}]`))
	require.NoError(t, err)

	res, err := engine.Reconcile(ctx, "Remain", []byte(`[
		{"Subdivision":"S1","ProductUid":"A","isPhysicallyDeleted":true},
		{"Subdivision":"S2","ProductUid":"A","Quantity":0},
		{"Subdivision":"S2","ProductUid":"C","SubdivisionName":"North","Quantity":"7.125"}]`))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Deleted)
	assert.Equal(t, 1, res.Upserted)

	var remains []Remain
	require.NoError(t, db.Order("subdivision, product_uid").Find(&remains).Error)
	require.Len(t, remains, 2)
	assert.Equal(t, "B", remains[0].ProductUid)
	assert.Equal(t, "C", remains[1].ProductUid)
	assert.Equal(t, "North", remains[1].SubdivisionName)
	assert.True(t, remains[1].Quantity.Equal(decimal.RequireFromString("7.125")))
}
