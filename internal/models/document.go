package models

import (
	"time"
)

// DocumentIndex is the composite index range scans and ordered reads use
const DocumentIndex = "idx_documents_collection_occurred"

// DocumentRecord is one schemaless document in a logical collection.
// OccurredAt is the normalized "timestamp" field of the document, if it has one.
type DocumentRecord struct {
	ID         string     `gorm:"primaryKey;size:36"`
	Collection string     `gorm:"size:64;not null;index:idx_documents_collection_occurred,priority:1"`
	OccurredAt *time.Time `gorm:"index:idx_documents_collection_occurred,priority:2"`
	Data       JSON       `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName overrides the table name for DocumentRecord
func (DocumentRecord) TableName() string {
	return "documents"
}
