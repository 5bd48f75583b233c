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
	t.Run("SQLite", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)

		err = db.Exec("CREATE TABLE item (id INTEGER PRIMARY KEY, name TEXT NOT NULL, description TEXT, price REAL)").Error
		require.NoError(t, err)

		columns, err := GetTableColumns(db, "item")
		require.NoError(t, err)
		require.Len(t, columns, 4)

		byField := make(map[string]ColumnInfo)
		for _, col := range columns {
			byField[col.Field] = col
		}

		assert.Equal(t, "integer", byField["id"].Type)
		assert.Equal(t, "PRI", byField["id"].Key)
		assert.Equal(t, "text", byField["name"].Type)
		assert.Equal(t, "NO", byField["name"].Null)
		assert.Equal(t, "YES", byField["description"].Null)
		assert.Equal(t, "real", byField["price"].Type)

		cols, err := GetTableColumns(db, "non_existent")
		assert.NoError(t, err)
		assert.Empty(t, cols)
	})

	t.Run("MySQL", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
			AddRow("ID", "INT", "NO", "PRI", nil, "").
			AddRow("name", "VARCHAR(255)", "NO", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `menu`").WillReturnRows(rows)

		columns, err := GetTableColumns(db, "menu")
		require.NoError(t, err)
		require.Len(t, columns, 2)
		assert.Equal(t, "id", columns[0].Field)
		assert.Equal(t, "int", columns[0].Type)
		assert.Equal(t, "varchar(255)", columns[1].Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
