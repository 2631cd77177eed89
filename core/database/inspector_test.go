package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE remains (subdivision TEXT, product_uid TEXT, quantity DECIMAL(18,4), PRIMARY KEY (subdivision, product_uid))").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "remains")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "text", colMap["subdivision"])
	assert.Equal(t, "text", colMap["product_uid"])
	assert.Equal(t, "decimal(18,4)", colMap["quantity"])

	// PRAGMA table_info returns an empty result for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
