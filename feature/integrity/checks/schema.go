package checks

import (
	"fmt"
	"sort"
	"strings"

	"sync-gateway/core/database"

	"gorm.io/gorm"
)

// Table statuses.
const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusError   = "error"
)

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"`
}

// typeAliases maps declared column types onto the names some dialects
// report for them.
var typeAliases = map[string][]string{
	"decimal": {"numeric"},
}

// CheckSchema verifies the live schema using the gorm models as the source
// of truth. Every model column must exist and explicitly typed columns must
// have a compatible type.
func CheckSchema(db *gorm.DB, models []any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		actualCols, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			continue
		}

		tblReport := TableReport{
			MissingColumns: []string{},
			TypeMismatches: []string{},
			Status:         StatusOK,
		}
		if len(actualCols) == 0 {
			tblReport.Status = StatusMissing
			report.Tables[table] = tblReport
			report.Matched = false
			continue
		}

		actualMap := make(map[string]database.ColumnInfo, len(actualCols))
		for _, col := range actualCols {
			actualMap[col.Field] = col
		}

		for _, dbName := range stmt.Schema.DBNames {
			field := stmt.Schema.FieldsByDBName[dbName]
			colName := strings.ToLower(dbName)
			actCol, exists := actualMap[colName]
			if !exists {
				tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
				continue
			}
			expType := strings.ToLower(field.TagSettings["TYPE"])
			if expType != "" && !typeMatches(expType, actCol.Type) {
				tblReport.TypeMismatches = append(tblReport.TypeMismatches,
					fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type))
			}
		}

		sort.Strings(tblReport.MissingColumns)
		if len(tblReport.MissingColumns) > 0 || len(tblReport.TypeMismatches) > 0 {
			tblReport.Status = StatusError
			report.Matched = false
		}
		report.Tables[table] = tblReport
	}

	return report, nil
}

// typeMatches is a soft comparison: the actual type must contain the
// declared one, or at least share its base name or an alias of it.
func typeMatches(expected, actual string) bool {
	if strings.Contains(actual, expected) {
		return true
	}
	base, _, _ := strings.Cut(expected, "(")
	if strings.HasPrefix(actual, base) {
		return true
	}
	for _, alias := range typeAliases[base] {
		if strings.HasPrefix(actual, alias) {
			return true
		}
	}
	return false
}
