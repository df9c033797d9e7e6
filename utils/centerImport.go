package utils

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"pramaansetu/models"
)

// ImportReport summarizes one CSV parse.
type ImportReport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ParseCenters reads center rows from a CSV stream. Expected columns are
// name, type, city, address, contact, capacityPerDay, located by header name
// so column order does not matter. Rows without a name or with an unknown
// type are skipped; a missing or unparsable capacity falls back to the
// default.
func ParseCenters(r io.Reader) ([]models.Center, *ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, &ImportReport{}, nil
	}

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	report := &ImportReport{}
	var centers []models.Center

	for _, row := range records[1:] {
		center := models.Center{
			Name:           getField(row, headerIndex, "name"),
			Type:           strings.ToLower(getField(row, headerIndex, "type")),
			City:           getField(row, headerIndex, "city"),
			Address:        getField(row, headerIndex, "address"),
			Contact:        getField(row, headerIndex, "contact"),
			CapacityPerDay: parseCapacity(getField(row, headerIndex, "capacityperday")),
		}

		if center.Name == "" || !models.IsCenterType(center.Type) {
			report.Skipped++
			continue
		}

		centers = append(centers, center)
		report.Imported++
	}

	return centers, report, nil
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseCapacity(s string) int {
	capacity, err := strconv.Atoi(s)
	if err != nil || capacity <= 0 {
		return models.DefaultCapacityPerDay
	}
	return capacity
}
