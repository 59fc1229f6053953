// Package exporters renders reading entries to flat delimited text
// and parses them back.
package exporters

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sebastiansb/reading-log/internal/apperrors"
	"github.com/sebastiansb/reading-log/internal/entities"
)

// csvDateFormat is the on-disk format for the read date column.
const csvDateFormat = "2006-01-02"

// csvHeader is the fixed, documented column order of the export.
var csvHeader = []string{
	"id", "title", "author", "genre", "subgenre",
	"year", "read_at", "rating", "pages", "publisher", "notes",
}

// WriteCSV writes a header row followed by one row per entry, in the
// order supplied by the caller. Quoting of embedded delimiters,
// quotes, and newlines follows RFC 4180 via encoding/csv.
func WriteCSV(w io.Writer, entryList []entities.ReadingEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range entryList {
		record := []string{
			strconv.FormatUint(uint64(entry.ID), 10),
			entry.Title,
			entry.Author,
			entry.Genre,
			entry.Subgenre,
			strconv.Itoa(entry.Year),
			entry.ReadAt.Format(csvDateFormat),
			strconv.FormatFloat(entry.Rating, 'f', -1, 64),
			strconv.Itoa(entry.Pages),
			entry.Publisher,
			entry.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for entry %d: %w", entry.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportToFile writes the entries as CSV to the given path. A
// destination that cannot be created or written surfaces as an
// apperrors.IOError.
func ExportToFile(path string, entryList []entities.ReadingEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewIO(path, err)
	}
	defer file.Close()

	if err := WriteCSV(file, entryList); err != nil {
		return apperrors.NewIO(path, err)
	}
	return nil
}

// ParseCSV reads entries from a CSV produced by WriteCSV (or a
// compatible file with at least a title column). Columns are located
// by header name, so column order and extra columns are tolerated.
// Rows that cannot be used are skipped and reported in the second
// return value, one message per line.
func ParseCSV(r io.Reader) ([]entities.ReadingEntry, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	if _, ok := headerIndex["title"]; !ok {
		return nil, nil, fmt.Errorf("missing required header: title")
	}

	var result []entities.ReadingEntry
	var skipped []string
	lineNum := 1 // the header was line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("Line %d: %v", lineNum, err))
			continue
		}

		entry := entities.ReadingEntry{
			Title:     getCSVValue(record, headerIndex, "title"),
			Author:    getCSVValue(record, headerIndex, "author"),
			Genre:     getCSVValue(record, headerIndex, "genre"),
			Subgenre:  getCSVValue(record, headerIndex, "subgenre"),
			Publisher: getCSVValue(record, headerIndex, "publisher"),
			Notes:     getCSVValue(record, headerIndex, "notes"),
		}

		if entry.Title == "" {
			skipped = append(skipped, fmt.Sprintf("Line %d: skipped - missing title", lineNum))
			continue
		}

		if v := getCSVValue(record, headerIndex, "id"); v != "" {
			if id, err := strconv.ParseUint(v, 10, 32); err == nil {
				entry.ID = uint(id)
			}
		}
		if v := getCSVValue(record, headerIndex, "year"); v != "" {
			if year, err := strconv.Atoi(v); err == nil {
				entry.Year = year
			}
		}
		if v := getCSVValue(record, headerIndex, "rating"); v != "" {
			if rating, err := strconv.ParseFloat(v, 64); err == nil {
				entry.Rating = rating
			}
		}
		if v := getCSVValue(record, headerIndex, "pages"); v != "" {
			if pages, err := strconv.Atoi(v); err == nil {
				entry.Pages = pages
			}
		}
		if v := getCSVValue(record, headerIndex, "read_at"); v != "" {
			if t, err := time.Parse(csvDateFormat, v); err == nil {
				entry.ReadAt = t
			}
		}

		result = append(result, entry)
	}

	return result, skipped, nil
}

func getCSVValue(record []string, headerIndex map[string]int, header string) string {
	if idx, ok := headerIndex[header]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
