// Package source reads and appends plain CSV ledger files.
//
// The format is one expense per line, `date,amount,description`, with the
// date as 2006-01-02. The date column may be omitted (`amount,description`)
// for entries that should be stamped with today's date at load time. A header
// line starting with "date" is skipped.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the on-disk date format.
const DateLayout = "2006-01-02"

// Entry is one parsed ledger line. Date is zero when the line carried no
// date column.
type Entry struct {
	Date        time.Time
	Amount      float64
	Description string
}

// ParseResult holds the entries read from a ledger file plus the number of
// lines that could not be parsed.
type ParseResult struct {
	Entries    []Entry
	LineErrors int
}

// ParseFile reads a CSV ledger file. A missing file is not an error: it
// yields an empty result, so first runs work before any expense exists.
func ParseFile(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ParseResult{}, nil
		}
		return ParseResult{}, fmt.Errorf("opening ledger file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f), nil
}

// ParseReader parses ledger CSV from a reader. Malformed lines are counted,
// not fatal; good lines around them still load.
func ParseReader(r io.Reader) ParseResult {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var result ParseResult
	first := true

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.LineErrors++
			continue
		}

		// Header line
		if first && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date") {
			first = false
			continue
		}
		first = false

		entry, ok := parseRecord(record)
		if !ok {
			result.LineErrors++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	return result
}

// parseRecord converts one CSV record into an Entry.
// 3 fields: date,amount,description. 2 fields: amount,description.
func parseRecord(record []string) (Entry, bool) {
	var e Entry

	switch len(record) {
	case 3:
		date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(record[0]), time.Local)
		if err != nil {
			return Entry{}, false
		}
		e.Date = date
		record = record[1:]
	case 2:
		// no date column
	default:
		return Entry{}, false
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return Entry{}, false
	}
	e.Amount = amount
	e.Description = strings.TrimSpace(record[1])
	if e.Description == "" {
		return Entry{}, false
	}

	return e, true
}

// Append writes one entry to the end of the ledger file, creating the file
// and its directory on first use.
func Append(path string, e Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	record := []string{
		e.Date.Format(DateLayout),
		strconv.FormatFloat(e.Amount, 'f', 2, 64),
		e.Description,
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("writing ledger entry: %w", err)
	}
	w.Flush()
	return w.Error()
}
