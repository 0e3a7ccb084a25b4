// Package store is the document store adapter. Documents live in logical
// collections, are keyed by a store-generated id, and are read by id or by
// conjunctive equality filters plus an inclusive timestamp range.
package store

import (
	"context"
	"time"

	"github.com/goccy/go-json"
)

// Store is the capability surface the services consume
type Store interface {
	// Get returns nil, nil when the document does not exist
	Get(ctx context.Context, collection, id string) (*Document, error)
	// GetMany fetches each distinct id once; missing ids are absent from the result
	GetMany(ctx context.Context, collection string, ids []string) ([]Document, error)
	Find(ctx context.Context, q Query) ([]Document, error)
	Insert(ctx context.Context, collection string, value interface{}) (*Document, error)
}

// Document is one stored document. Timestamp is the normalized "timestamp"
// field, nil when the document has none.
type Document struct {
	ID         string
	Collection string
	Timestamp  *time.Time
	Data       json.RawMessage
}

// Decode unmarshals the document body into v and sets its "id" field
func (d Document) Decode(v interface{}) error {
	if err := json.Unmarshal(d.Data, v); err != nil {
		return err
	}
	id, err := json.Marshal(map[string]string{"id": d.ID})
	if err != nil {
		return err
	}
	return json.Unmarshal(id, v)
}

// Predicate is an equality test on a top level document field
type Predicate struct {
	Field string
	Value string
}

// Order selects the result ordering by timestamp
type Order int

const (
	OrderNone Order = iota
	OrderNewestFirst
	OrderOldestFirst
)

// Query is a conjunctive query against one collection.
// From and To bound the timestamp inclusively; an inverted range matches nothing.
type Query struct {
	Collection string
	Where      []Predicate
	From       *time.Time
	To         *time.Time
	Order      Order
	Limit      int
}

// Equal adds an equality predicate
func (q Query) Equal(field, value string) Query {
	where := make([]Predicate, len(q.Where), len(q.Where)+1)
	copy(where, q.Where)
	q.Where = append(where, Predicate{Field: field, Value: value})
	return q
}

// HasRange reports whether the query bounds the timestamp
func (q Query) HasRange() bool {
	return q.From != nil || q.To != nil
}

// Matches reports whether a decoded document body satisfies every predicate
func (q Query) Matches(body map[string]interface{}) bool {
	for _, p := range q.Where {
		value, ok := body[p.Field].(string)
		if !ok || value != p.Value {
			return false
		}
	}
	return true
}

// UniqueIDs drops empty and repeated ids, preserving first-seen order
func UniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
