package checks

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bulk-editor/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Table status values.
const (
	StatusOK      = "ok"
	StatusMissing = "missing"
	StatusError   = "error"
)

// SchemaReport is the result of comparing models with the live database.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport lists the differences of one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"`
}

// CheckSchema verifies that the tables of models exist with every column
// their gorm tags declare. Declared types are compared loosely, so
// "bigint" matches "bigint(20)".
func CheckSchema(db *gorm.DB, models ...schema.Tabler) (*SchemaReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport, len(models)),
		Errors:  []string{},
	}

	for _, model := range models {
		table := model.TableName()
		tbl := TableReport{
			MissingColumns: []string{},
			TypeMismatches: []string{},
			Status:         StatusOK,
		}

		actual, err := database.GetTableColumns(db, table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
			report.Matched = false
			tbl.Status = StatusError
			report.Tables[table] = tbl
			continue
		}
		if len(actual) == 0 {
			report.Matched = false
			tbl.Status = StatusMissing
			report.Tables[table] = tbl
			continue
		}
		types := database.ColumnTypes(actual)

		for _, col := range expectedColumns(model) {
			actType, exists := types[col.name]
			if !exists {
				tbl.MissingColumns = append(tbl.MissingColumns, col.name)
				tbl.Status = StatusError
				report.Matched = false
				continue
			}
			if col.typ != "" && !strings.Contains(actType, col.typ) {
				tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", col.name, col.typ, actType))
				tbl.Status = StatusError
				report.Matched = false
			}
		}

		report.Tables[table] = tbl
	}

	return report, nil
}

type column struct {
	name string
	typ  string
}

// expectedColumns reads the column and type of every tagged struct field.
func expectedColumns(model any) []column {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []column
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		if tag == "-" {
			continue
		}
		name := parseGormColumn(tag)
		if name == "" {
			continue
		}
		cols = append(cols, column{name: name, typ: strings.ToLower(parseGormType(tag))})
	}
	return cols
}

func parseGormColumn(tag string) string {
	return tagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return tagValue(tag, "type:")
}

func tagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
