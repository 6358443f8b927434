package checks

import (
	"fmt"
	"reflect"
	"strings"

	"wardrobe/core/database"
	"wardrobe/feature/emulator/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the registry table against the emulator model.
type SchemaReport struct {
	Emulator string                 `json:"emulator"`
	Matched  bool                   `json:"matched"`
	Tables   map[string]TableReport `json:"tables"`
	Errors   []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckRegistrySchema verifies the emulator's catalog_clothing table using the gorm
// model as the source of truth.
func CheckRegistrySchema(db *gorm.DB, emulator string) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	model, err := models.ForEmulator(emulator)
	if err != nil {
		return nil, err
	}

	report := &SchemaReport{
		Emulator: emulator,
		Tables:   make(map[string]TableReport),
		Errors:   []string{},
		Matched:  true,
	}

	tableName := model.TableName()
	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
		report.Matched = false
		return report, nil
	}

	actualMap := make(map[string]database.ColumnInfo)
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	val := reflect.TypeOf(model)
	for i := 0; i < val.NumField(); i++ {
		gormTag := val.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = "error"
			report.Matched = false
			continue
		}

		// Only the base type is compared; emulators differ in varchar widths.
		expType := strings.ToLower(parseGormType(gormTag))
		if expType == "" {
			continue
		}
		if baseType(actCol.Type) != baseType(expType) {
			mismatch := fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type)
			tblReport.TypeMismatches = append(tblReport.TypeMismatches, mismatch)
			tblReport.Status = "error"
			report.Matched = false
		}
	}

	report.Tables[tableName] = tblReport
	return report, nil
}

// baseType strips the length: "varchar(75)" -> "varchar".
func baseType(t string) string {
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
