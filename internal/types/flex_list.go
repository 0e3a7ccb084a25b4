package types

import (
	"bytes"

	"github.com/goccy/go-json"
)

// FlexList is a slice that can be unmarshaled from either a single JSON object or a JSON array.
// Batch records whether the input was an array so responses can mirror its shape.
type FlexList[T any] struct {
	Items []T
	Batch bool
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '[' {
		var slice []T
		if err := json.Unmarshal(data, &slice); err != nil {
			return err
		}
		f.Items = slice
		f.Batch = true
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	f.Items = []T{item}
	f.Batch = false
	return nil
}

// Len returns the number of items
func (f FlexList[T]) Len() int {
	return len(f.Items)
}
