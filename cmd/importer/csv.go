package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"inventory-api/internal/models"
)

func readCSV(filePath string, minColumns int, row func(line int, record []string) error) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < minColumns {
			return fmt.Errorf("line %d: invalid record length: %d, expected at least %d columns", line, len(record), minColumns)
		}
		if err := row(line, record); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func parseSodaCSV(filePath string) ([]models.SodaInput, error) {
	var sodas []models.SodaInput
	err := readCSV(filePath, 2, func(_ int, record []string) error {
		soda := models.SodaInput{Name: record[0], Abbreviation: record[1]}
		if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
			lowCalorie, err := strconv.ParseBool(strings.TrimSpace(record[2]))
			if err != nil {
				return fmt.Errorf("invalid low_calorie: %s", record[2])
			}
			soda.LowCalorie = lowCalorie
		}
		sodas = append(sodas, soda)
		return nil
	})
	return sodas, err
}

// retailerRow is one CSV line. Sodas are listed by abbreviation, separated by ';'.
type retailerRow struct {
	line          int
	name          string
	streetAddress string
	city          string
	postcode      *int
	country       string
	sodaCodes     []string
}

func parseRetailerCSV(filePath string) ([]retailerRow, error) {
	var rows []retailerRow
	err := readCSV(filePath, 3, func(line int, record []string) error {
		row := retailerRow{
			line:          line,
			name:          record[0],
			streetAddress: record[1],
			city:          record[2],
		}
		if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
			postcode, err := strconv.Atoi(strings.TrimSpace(record[3]))
			if err != nil {
				return fmt.Errorf("invalid postcode: %s", record[3])
			}
			row.postcode = &postcode
		}
		if len(record) > 4 {
			row.country = record[4]
		}
		if len(record) > 5 {
			for _, code := range strings.Split(record[5], ";") {
				if code = strings.TrimSpace(code); code != "" {
					row.sodaCodes = append(row.sodaCodes, code)
				}
			}
		}
		rows = append(rows, row)
		return nil
	})
	return rows, err
}

// input resolves the row's soda abbreviations against the stored catalog.
func (r retailerRow) input(catalog []models.Soda) (models.RetailerInput, error) {
	ids := make(map[string]int64, len(catalog))
	for _, s := range catalog {
		ids[s.Abbreviation] = s.ID
	}

	in := models.RetailerInput{
		Name:          r.name,
		StreetAddress: r.streetAddress,
		City:          r.city,
		Postcode:      r.postcode,
		Country:       r.country,
	}
	for _, code := range r.sodaCodes {
		id, ok := ids[strings.ToUpper(code)]
		if !ok {
			return models.RetailerInput{}, fmt.Errorf("%w: unknown soda %q", models.ErrInvalidReference, code)
		}
		in.SodaIDs = append(in.SodaIDs, id)
	}
	return in, nil
}
