// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nobel

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/nobel-fetcher/pkg/types"
)

// Entry is the printable view of one laureate.
type Entry struct {
	FullName    string `json:"full_name" yaml:"full_name"`
	AwardYear   string `json:"award_year" yaml:"award_year"`
	Affiliation string `json:"affiliation" yaml:"affiliation"`
}

// Reporter filters laureate records by award year and writes the matches.
type Reporter struct {
	Out    io.Writer
	Log    logrus.FieldLogger
	Output OutputFormat
}

// NewReporter returns a text Reporter writing to out.
func NewReporter(out io.Writer, log logrus.FieldLogger) *Reporter {
	return &Reporter{Out: out, Log: log, Output: OutputText}
}

// ReportForYear writes every record whose first prize was awarded in year and
// returns how many were written. Records that cannot be read are logged and
// skipped. Text blocks are written as soon as their record matches; JSON and
// YAML are written once the scan is done. The error is only set when writing
// the output fails.
func (r *Reporter) ReportForYear(records []types.Laureate, year int) (int, error) {
	switch r.Output {
	case OutputJSON:
		entries := r.Select(records, year)
		return len(entries), FormatJSON(entries, r.Out)
	case OutputYAML:
		entries := r.Select(records, year)
		return len(entries), FormatYAML(entries, r.Out)
	default:
		return r.scan(records, year, func(e Entry) error {
			return WriteEntry(r.Out, e)
		})
	}
}

// Select returns the entries of records whose first prize was awarded in
// year, in input order. It logs an error when records is empty, an info line
// when nothing matched, and an error for each record missing a needed key.
func (r *Reporter) Select(records []types.Laureate, year int) []Entry {
	var entries []Entry
	r.scan(records, year, func(e Entry) error {
		entries = append(entries, e)
		return nil
	})
	return entries
}

// scan calls emit for each readable matching record, in input order, and
// returns the number of entries emitted. It stops at the first emit error.
func (r *Reporter) scan(records []types.Laureate, year int, emit func(Entry) error) (int, error) {
	if len(records) == 0 {
		r.Log.Error("Laureates data not found!")
		return 0, nil
	}

	n := 0
	found := false
	for i, l := range records {
		awardYear, err := l.FirstAwardYear()
		if err != nil {
			r.recordLog(i, l).WithError(err).Error("Failed to read laureate award year")
			continue
		}
		if awardYear != year {
			continue
		}
		found = true

		e, err := entryFor(l)
		if err != nil {
			r.recordLog(i, l).Errorf("Failed to print laureate info: %v", err)
			continue
		}
		if err := emit(e); err != nil {
			return n, err
		}
		n++
	}

	if !found {
		r.Log.Infof("No laureates were found in %d!", year)
	}
	return n, nil
}

func (r *Reporter) recordLog(i int, l types.Laureate) logrus.FieldLogger {
	fields := logrus.Fields{"index": i}
	if l.ID != "" {
		fields["laureate_id"] = l.ID
	}
	return r.Log.WithFields(fields)
}

// entryFor reads the displayed fields of l, stopping at the first missing key.
func entryFor(l types.Laureate) (Entry, error) {
	name, err := l.FullName()
	if err != nil {
		return Entry{}, err
	}
	prize, err := l.FirstPrize()
	if err != nil {
		return Entry{}, err
	}
	affiliation, err := l.FirstAffiliation()
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		FullName:    name,
		AwardYear:   string(prize.AwardYear),
		Affiliation: affiliation,
	}, nil
}

// WriteEntry writes the four line block for e followed by a blank line.
func WriteEntry(w io.Writer, e Entry) error {
	_, err := fmt.Fprintf(w, "%s\nFull name: %s\nAward year: %s\nAffiliations: %s\n\n",
		separator, e.FullName, e.AwardYear, e.Affiliation)
	return err
}

const separator = "---------------------------------"
