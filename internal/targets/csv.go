package targets

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/sendcast/sendcast-cli/internal/api"
)

// fieldPrefix marks CSV columns that map to custom subscriber fields,
// e.g. "field:company" -> fields["company"].
const fieldPrefix = "field:"

// ParseSubscriberCSV reads a subscriber import file. The CSV must have
// an "email" column; "name", "tags", "remove_tags" and "field:*"
// columns are optional. Tags cells hold comma-separated values.
// Row errors are collected, not fatal; an unreadable file is.
func ParseSubscriberCSV(path string) ([]api.ImportRecord, []RowError, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := rows[0]
	emailCol := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), "email") {
			emailCol = i
		}
	}
	if emailCol < 0 {
		return nil, []RowError{{Line: 1, Column: "email", Message: "missing required email column"}}, nil
	}

	var records []api.ImportRecord
	var rowErrs []RowError
	seen := make(map[string]int) // email -> record index

	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after header
		if emailCol >= len(row) {
			rowErrs = append(rowErrs, RowError{Line: line, Column: "email", Message: "missing email value"})
			continue
		}
		email := Normalize(row[emailCol])
		if email == "" {
			rowErrs = append(rowErrs, RowError{Line: line, Column: "email", Message: "missing email value"})
			continue
		}
		if !ValidEmail(email) {
			rowErrs = append(rowErrs, RowError{Line: line, Column: "email", Message: "invalid email format", Value: row[emailCol]})
			continue
		}

		record := api.ImportRecord{Email: email}
		for col, h := range header {
			if col == emailCol || col >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[col])
			if value == "" {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(h))
			switch {
			case key == "name":
				record.Name = value
			case key == "tags":
				record.Tags = splitList(value)
			case key == "remove_tags":
				record.RemoveTags = splitList(value)
			case strings.HasPrefix(key, fieldPrefix):
				if record.Fields == nil {
					record.Fields = make(map[string]string)
				}
				record.Fields[strings.TrimPrefix(key, fieldPrefix)] = value
			}
		}

		// Last occurrence wins for duplicates, position stays first-seen
		if idx, ok := seen[email]; ok {
			records[idx] = record
			continue
		}
		seen[email] = len(records)
		records = append(records, record)
	}

	return records, rowErrs, nil
}

// ParseEmailList reads a target file for tag/suppress/unsubscribe
// commands. Accepts a CSV with an email column or a newline-delimited
// plain list; blank lines and '#' comments are skipped.
func ParseEmailList(path string) ([]string, []RowError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &FileError{Path: path, Err: err}
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	// Header sniffing: a first meaningful line with a comma or a bare
	// "email" header means CSV.
	if isCSVList(lines) {
		records, rowErrs, err := ParseSubscriberCSV(path)
		if err != nil {
			return nil, nil, err
		}
		emails := make([]string, 0, len(records))
		for _, r := range records {
			emails = append(emails, r.Email)
		}
		return dedupe(emails), rowErrs, nil
	}

	var emails []string
	var rowErrs []RowError
	for i, line := range lines {
		value := strings.TrimSpace(line)
		if value == "" || strings.HasPrefix(value, "#") {
			continue
		}
		email := Normalize(value)
		if !ValidEmail(email) {
			rowErrs = append(rowErrs, RowError{Line: i + 1, Column: "email", Message: "invalid email format", Value: value})
			continue
		}
		emails = append(emails, email)
	}

	return dedupe(emails), rowErrs, nil
}

func isCSVList(lines []string) bool {
	for _, line := range lines {
		value := strings.TrimSpace(line)
		if value == "" || strings.HasPrefix(value, "#") {
			continue
		}
		if strings.Contains(value, ",") {
			return true
		}
		return strings.EqualFold(value, "email")
	}
	return false
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows become row errors, not a parse abort
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return rows, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}
