package data

import (
	_ "embed"
)

// SeedJSON is the sample data set cmd/seed loads
//
//go:embed seed.json
var SeedJSON []byte
