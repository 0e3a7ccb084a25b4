package models

import (
	"database/sql/driver"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON holds a document body. It wraps gorm.io/datatypes.JSON so the column
// type can be chosen per dialect.
type JSON struct {
	datatypes.JSON
}

// NewJSON wraps an encoded document body
func NewJSON(data []byte) JSON {
	return JSON{JSON: datatypes.JSON(data)}
}

// Bytes returns the encoded document body
func (j JSON) Bytes() []byte {
	return []byte(j.JSON)
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType picks the column type per dialect.
// MSSQL has no json type, so documents are stored as text there and
// equality filters cannot be pushed down (see store.GormStore).
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
