// gorm_store.go
//
// A childcare center data and analytics service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of daycare-data.
// daycare-data is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// daycare-data is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with daycare-data.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// GormStore keeps every collection in the documents table
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore creates a GormStore over an open connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Get retrieves one document by id
func (s *GormStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	var rec models.DocumentRecord
	err := s.DB.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Take(&rec).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}

	doc := toDocument(rec)
	return &doc, nil
}

// GetMany retrieves the documents for a set of ids in one round trip
func (s *GormStore) GetMany(ctx context.Context, collection string, ids []string) ([]Document, error) {
	ids = UniqueIDs(ids)
	if len(ids) == 0 {
		return []Document{}, nil
	}

	var recs []models.DocumentRecord
	err := s.DB.WithContext(ctx).
		Where("collection = ? AND id IN ?", collection, ids).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("get many %s: %w", collection, err)
	}

	return toDocuments(recs), nil
}

// Find runs a query. Equality filters are pushed down as JSON path
// comparisons on dialects that support them and applied in memory otherwise.
func (s *GormStore) Find(ctx context.Context, q Query) ([]Document, error) {
	dialect := s.DB.Dialector.Name()
	pushdown := supportsJSONQuery(dialect)

	tx := s.DB.WithContext(ctx).
		Model(&models.DocumentRecord{}).
		Where("collection = ?", q.Collection)

	if pushdown {
		for _, p := range q.Where {
			tx = tx.Where(datatypes.JSONQuery("data").Equals(p.Value, p.Field))
		}
	}

	if q.From != nil {
		tx = tx.Where("occurred_at >= ?", q.From.UTC())
	}
	if q.To != nil {
		tx = tx.Where("occurred_at <= ?", q.To.UTC())
	}

	if dialect == "mysql" && (q.HasRange() || q.Order != OrderNone) {
		tx = tx.Clauses(hints.UseIndex(models.DocumentIndex))
	}

	switch q.Order {
	case OrderNewestFirst:
		tx = tx.Order("occurred_at DESC").Order("id")
	case OrderOldestFirst:
		tx = tx.Order("occurred_at ASC").Order("id")
	}

	if q.Limit > 0 && (pushdown || len(q.Where) == 0) {
		tx = tx.Limit(q.Limit)
	}

	var recs []models.DocumentRecord
	if err := tx.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("find %s: %w", q.Collection, err)
	}

	docs := toDocuments(recs)
	if pushdown || len(q.Where) == 0 {
		return docs, nil
	}

	return filterDocuments(docs, q)
}

// Insert stores value as a new document with a generated id.
// A "timestamp" field, in either stored encoding, is indexed for range queries.
func (s *GormStore) Insert(ctx context.Context, collection string, value interface{}) (*Document, error) {
	data, occurredAt, err := encodeDocument(value)
	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", collection, err)
	}

	rec := models.DocumentRecord{
		ID:         uuid.NewString(),
		Collection: collection,
		OccurredAt: occurredAt,
		Data:       models.NewJSON(data),
	}

	if err := s.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert %s: %w", collection, err)
	}

	doc := toDocument(rec)
	return &doc, nil
}

// supportsJSONQuery reports whether datatypes.JSONQuery can build an equality for the dialect
func supportsJSONQuery(dialect string) bool {
	switch dialect {
	case "mysql", "sqlite", "postgres":
		return true
	}
	return false
}

// encodeDocument marshals value, drops any "id" field and extracts the timestamp
func encodeDocument(value interface{}) ([]byte, *time.Time, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, fmt.Errorf("document must be a JSON object: %w", err)
	}
	delete(fields, "id")

	var occurredAt *time.Time
	if ts, ok := fields["timestamp"]; ok {
		t, err := types.NormalizeTimestamp(ts)
		if err != nil {
			return nil, nil, err
		}
		if !t.IsZero() {
			occurredAt = &t
		}
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, nil, err
	}
	return data, occurredAt, nil
}

func filterDocuments(docs []Document, q Query) ([]Document, error) {
	matched := make([]Document, 0, len(docs))
	for _, doc := range docs {
		var body map[string]interface{}
		if err := json.Unmarshal(doc.Data, &body); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", doc.Collection, doc.ID, err)
		}
		if q.Matches(body) {
			matched = append(matched, doc)
		}
		if q.Limit > 0 && len(matched) == q.Limit {
			break
		}
	}
	return matched, nil
}

func toDocument(rec models.DocumentRecord) Document {
	doc := Document{
		ID:         rec.ID,
		Collection: rec.Collection,
		Data:       json.RawMessage(rec.Data.Bytes()),
	}
	if rec.OccurredAt != nil {
		t := rec.OccurredAt.UTC()
		doc.Timestamp = &t
	}
	return doc
}

func toDocuments(recs []models.DocumentRecord) []Document {
	docs := make([]Document, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, toDocument(rec))
	}
	return docs
}
