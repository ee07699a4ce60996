// Package scan reads lists of ISO dates, one per line.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/username/datum/pkg/datum"
	"go.uber.org/zap"
)

// MaxLineSize is the longest line Scan accepts; a longer line fails the scan
const MaxLineSize = 1 << 20

// Entry is one parsed line
type Entry struct {
	Line  int
	Datum *datum.Datum
	Note  string
}

// Result holds parsed entries and the span they cover
type Result struct {
	Entries []Entry
	Skipped int
	Span    datum.DateRange
}

// Scanner reads date lists. Line format: YYYY-MM-DD [note]
// Example: 2025-01-01 New Year
type Scanner struct {
	logger *zap.Logger
}

// NewScanner creates a new Scanner
func NewScanner(logger *zap.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// ScanFile reads dates from the file at path
func (s *Scanner) ScanFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open date list: %w", err)
	}
	defer file.Close()

	result, err := s.Scan(file)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Date list loaded",
		zap.String("file", path),
		zap.Int("entries", len(result.Entries)),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

// Scan reads dates from r. Blank lines and lines starting with # are ignored;
// lines that do not parse are logged and skipped. Lines longer than
// MaxLineSize abort the scan with an error.
func (s *Scanner) Scan(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	result := &Result{}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// the date is the first field; any whitespace separates the note
		dateStr := strings.Fields(line)[0]
		note := strings.TrimSpace(line[len(dateStr):])

		d, err := datum.Parse(dateStr)
		if err != nil {
			s.logger.Warn("Skipping invalid line",
				zap.Int("line", lineNo),
				zap.String("text", line),
				zap.Error(err))
			result.Skipped++
			continue
		}

		result.Entries = append(result.Entries, Entry{Line: lineNo, Datum: d, Note: note})
		result.extend(d.Value())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading date list: %w", err)
	}

	return result, nil
}

func (r *Result) extend(t time.Time) {
	if r.Span.Start == nil || t.Before(*r.Span.Start) {
		start := t
		r.Span.Start = &start
	}
	if r.Span.End == nil || t.After(*r.Span.End) {
		end := t
		r.Span.End = &end
	}
}
