package main

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/daycare-data/internal/database"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	// Auto-migrate to see what GORM creates
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	// Get the schema, tables and indexes
	var objects []struct {
		Type string
		Name string
		SQL  string `gorm:"column:sql"`
	}
	db.Raw("SELECT type, name, sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY type DESC, name").Scan(&objects)

	for _, obj := range objects {
		fmt.Printf("\n=== %s: %s ===\n", obj.Type, obj.Name)
		fmt.Println(obj.SQL)
	}
}
