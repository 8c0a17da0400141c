package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT NOT NULL, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := ColumnTypes(columns)
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "text", colMap["description"])
	assert.Equal(t, "PRI", columns[0].Key)
	assert.Equal(t, "NO", columns[1].Null)

	// PRAGMA table_info returns no rows for an unknown table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "BIGINT", "NO", "PRI", nil, "auto_increment").
		AddRow("Title", "VARCHAR(140)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `products`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "products")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"id": "bigint", "title": "varchar(140)"}, ColumnTypes(columns))
	assert.NoError(t, mock.ExpectationsWereMet())
}
