package main

import (
	"log"
	"os"

	"pramaansetu/config"
	"pramaansetu/database"
	"pramaansetu/utils"
)

// Bulk-loads verification centers from a CSV file into the database.
// Usage: go run scripts/importCenters.go centers.csv
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "centers.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	centers, report, err := utils.ParseCenters(file)
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(centers) == 0 {
		log.Fatal("CSV file contained no valid center rows")
	}

	if err := database.Database.Db.Create(&centers).Error; err != nil {
		log.Fatalf("Failed to insert centers: %v", err)
	}

	log.Printf("Import complete: %d inserted, %d skipped", report.Imported, report.Skipped)
}
