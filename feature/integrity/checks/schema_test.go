package checks

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckRegistrySchema_UnknownEmulator(t *testing.T) {
	db, _ := setupMockDB(t)
	report, err := CheckRegistrySchema(db, "unknown")
	assert.Nil(t, report)
	assert.EqualError(t, err, "unknown emulator model: unknown")
}

func TestCheckRegistrySchema_NilDB(t *testing.T) {
	report, err := CheckRegistrySchema(nil, "arcturus")
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckRegistrySchema_Arcturus(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("id", "int(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("name", "VARCHAR(100)", "NO", "", nil, "").
		AddRow("setid", "varchar(75)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `catalog_clothing`").WillReturnRows(rows)

	report, err := CheckRegistrySchema(db, "arcturus")
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["catalog_clothing"].Status)
}

func TestCheckRegistrySchema_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("id", "int(11)", "NO", "PRI", nil, "").
		AddRow("clothing_name", "varchar(50)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `catalog_clothing`").WillReturnRows(rows)

	report, err := CheckRegistrySchema(db, "plus")
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["catalog_clothing"]
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"clothing_parts"}, tbl.MissingColumns)
}

func TestCheckRegistrySchema_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("id", "int(11)", "NO", "PRI", nil, "").
		AddRow("name", "varchar(255)", "NO", "", nil, "").
		AddRow("setid", "int(11)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `catalog_clothing`").WillReturnRows(rows)

	report, err := CheckRegistrySchema(db, "comet")
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"setid: expected varchar(255), got int(11)"}, report.Tables["catalog_clothing"].TypeMismatches)
}

func TestCheckRegistrySchema_InspectFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `catalog_clothing`").WillReturnError(errors.New("table doesn't exist"))

	report, err := CheckRegistrySchema(db, "arcturus")
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "table doesn't exist")
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "setid", parseGormColumn("primaryKey;column:setid;type:varchar(75)"))
	assert.Equal(t, "varchar(75)", parseGormType("column:setid;type:varchar(75)"))
	assert.Equal(t, "", parseGormType("column:id"))
	assert.Equal(t, "varchar", baseType("varchar(75)"))
	assert.Equal(t, "int", baseType("int"))
}
