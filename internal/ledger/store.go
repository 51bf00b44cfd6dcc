package ledger

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/spendlog/internal/atomicfile"
	"github.com/theirongolddev/spendlog/internal/model"
)

// Header is the column layout of the record store.
var Header = []string{"date", "category", "amount", "description"}

// ErrBadHeader is returned when the store's header lacks a required column.
var ErrBadHeader = errors.New("record store header missing required column")

// RowError describes one row that could not be used as-is.
type RowError struct {
	Line int
	Raw  []string
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, strings.Join(e.Raw, ","), e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// LoadReport partitions a load into kept rows and problems. Skipped rows are
// not in the ledger. Warnings are rows that were kept with a substitution
// (an unknown category label read as Miscellaneous).
type LoadReport struct {
	Loaded   int
	Skipped  []RowError
	Warnings []RowError
}

// errUnknownCategory marks a row whose category label was not recognised.
var errUnknownCategory = errors.New("unknown category, using Miscellaneous")

// Load replaces the in-memory records with the contents of the record
// store. A missing file yields an empty ledger. Malformed rows are skipped
// and reported; only whole-file failures are returned as errors, in which
// case the ledger is left unchanged.
func (l *Ledger) Load() (LoadReport, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.expenses = nil
			return LoadReport{}, nil
		}
		return LoadReport{}, fmt.Errorf("opening record store: %w", err)
	}
	defer func() { _ = f.Close() }()

	expenses, report, err := decode(f)
	if err != nil {
		return report, fmt.Errorf("reading %s: %w", l.path, err)
	}
	l.expenses = expenses
	return report, nil
}

// Save writes every record in ascending date order, replacing the store
// atomically.
func (l *Ledger) Save() error {
	sorted := l.ListSorted(false)
	return atomicfile.Write(l.path, 0o600, func(w io.Writer) error {
		return encode(w, sorted)
	})
}

func encode(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range expenses {
		row := []string{e.Date, e.Category.Label(), e.Amount.String(), e.Description}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %s: %w", e.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func decode(r io.Reader) ([]model.Expense, LoadReport, error) {
	var report LoadReport

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, report, err
	}
	lines := strings.Split(string(data), "\n")

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1 // rows are checked individually

	header, err := cr.Read()
	if err == io.EOF {
		return nil, report, nil
	}
	if err != nil {
		return nil, report, fmt.Errorf("reading header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, report, err
	}

	var expenses []model.Expense
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				report.Skipped = append(report.Skipped, RowError{
					Line: pe.StartLine,
					Raw:  []string{rawLines(lines, pe.StartLine, pe.Line)},
					Err:  pe.Err,
				})
				continue
			}
			return nil, report, err
		}

		line, _ := cr.FieldPos(0)
		e, known, err := parseRow(row, cols)
		if err != nil {
			report.Skipped = append(report.Skipped, RowError{Line: line, Raw: row, Err: err})
			continue
		}
		if !known {
			report.Warnings = append(report.Warnings, RowError{Line: line, Raw: row, Err: errUnknownCategory})
		}
		expenses = append(expenses, e)
	}

	report.Loaded = len(expenses)
	return expenses, report, nil
}

// rawLines returns source lines first..last (1-based, inclusive). The csv
// reader only hands back the fields it parsed before a syntax error.
func rawLines(lines []string, first, last int) string {
	first = max(first, 1)
	last = min(max(last, first), len(lines))
	if first > last {
		return ""
	}
	out := make([]string, 0, last-first+1)
	for _, l := range lines[first-1 : last] {
		out = append(out, strings.TrimSuffix(l, "\r"))
	}
	return strings.Join(out, "\n")
}

type columns struct {
	date, category, amount, description int
}

func columnIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		// Strip a UTF-8 BOM left by spreadsheet exports.
		idx[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}
	var c columns
	for _, name := range Header {
		i, ok := idx[name]
		if !ok {
			return c, fmt.Errorf("%w: %q", ErrBadHeader, name)
		}
		switch name {
		case "date":
			c.date = i
		case "category":
			c.category = i
		case "amount":
			c.amount = i
		case "description":
			c.description = i
		}
	}
	return c, nil
}

func (c columns) width() int {
	return max(c.date, c.category, c.amount, c.description) + 1
}

// parseRow converts one data row. The bool is false when the category label
// was not recognised.
func parseRow(row []string, c columns) (model.Expense, bool, error) {
	if len(row) < c.width() {
		return model.Expense{}, false, fmt.Errorf("expected %d fields, got %d", c.width(), len(row))
	}

	date := strings.TrimSpace(row[c.date])
	if err := model.ValidateDate(date); err != nil {
		return model.Expense{}, false, err
	}
	amount, err := model.ParseAmount(row[c.amount])
	if err != nil {
		return model.Expense{}, false, err
	}
	cat, known := model.FromLabel(row[c.category])

	return model.Expense{
		Date:        date,
		Category:    cat,
		Amount:      amount,
		Description: row[c.description],
	}, known, nil
}
