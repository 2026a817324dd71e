// Package model defines database models for persistence layer.
package model

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// TextArray is a string list column. Postgres stores it natively as text[];
// other dialects keep the same array literal in a text column.
type TextArray struct {
	pq.StringArray
}

// NewTextArray wraps values, treating nil as empty.
func NewTextArray(values []string) TextArray {
	if values == nil {
		values = []string{}
	}
	return TextArray{StringArray: pq.StringArray(values)}
}

// Strings returns the values, never nil.
func (a TextArray) Strings() []string {
	if a.StringArray == nil {
		return []string{}
	}
	return []string(a.StringArray)
}

// GormDBDataType implements schema.GormDataTypeInterface per dialect.
func (TextArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
