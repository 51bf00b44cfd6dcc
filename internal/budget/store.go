package budget

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/spendlog/internal/atomicfile"
	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/shopspring/decimal"
)

var errFieldCount = errors.New("expected month,amount")

// LineError describes one budget line that was ignored.
type LineError struct {
	Line int
	Raw  string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Raw, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// LoadReport lists the lines a load ignored.
type LoadReport struct {
	Loaded  int
	Skipped []LineError
}

// Load replaces the in-memory budgets with the contents of the budget
// store. A missing file yields no budgets. Malformed lines are skipped;
// only whole-file failures are returned as errors, leaving the tracker
// unchanged.
func (t *Tracker) Load() (LoadReport, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			t.budgets = make(map[string]decimal.Decimal)
			return LoadReport{}, nil
		}
		return LoadReport{}, fmt.Errorf("opening budget store: %w", err)
	}
	defer func() { _ = f.Close() }()

	budgets, report, err := decode(f)
	if err != nil {
		return report, fmt.Errorf("reading %s: %w", t.path, err)
	}
	t.budgets = budgets
	return report, nil
}

// Save writes one month,amount line per budget in month order, replacing
// the store atomically.
func (t *Tracker) Save() error {
	return atomicfile.Write(t.path, 0o600, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, m := range t.Months() {
			if _, err := fmt.Fprintf(bw, "%s,%s\n", m, t.budgets[m].String()); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}

func decode(r io.Reader) (map[string]decimal.Decimal, LoadReport, error) {
	var report LoadReport
	budgets := make(map[string]decimal.Decimal)

	// ReadString has no line length limit, so one oversized line is skipped
	// like any other malformed line.
	br := bufio.NewReader(r)
	n := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, report, err
		}
		if raw == "" && err == io.EOF {
			break
		}
		n++
		raw = strings.TrimRight(raw, "\r\n")

		if line := strings.TrimSpace(raw); line != "" {
			month, amount, perr := parseLine(line)
			if perr != nil {
				report.Skipped = append(report.Skipped, LineError{Line: n, Raw: raw, Err: perr})
			} else {
				// Later lines win.
				budgets[month] = amount
			}
		}
		if err == io.EOF {
			break
		}
	}

	report.Loaded = len(budgets)
	return budgets, report, nil
}

func parseLine(line string) (string, decimal.Decimal, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return "", decimal.Zero, errFieldCount
	}
	month := strings.TrimSpace(fields[0])
	if month == "" {
		return "", decimal.Zero, model.ErrInvalidMonth
	}
	amount, err := model.ParseAmount(fields[1])
	if err != nil {
		return "", decimal.Zero, err
	}
	return month, amount, nil
}
