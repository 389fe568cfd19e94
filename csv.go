package certigenius

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadRecords parses header-row CSV into one string-keyed record per data
// row. Keys are the header cells as written; AddBulk performs the lowercase
// normalization and defaulting. Rows shorter than the header leave the
// trailing columns absent.
func ReadRecords(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var records []map[string]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		rec := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				rec[key] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ImportCSV reads header-row CSV and appends the resulting records to the
// store via AddBulk.
func (s *RecipientStore) ImportCSV(r io.Reader) ([]Recipient, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return s.AddBulk(records), nil
}
