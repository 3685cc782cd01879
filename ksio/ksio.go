// Package ksio - plain-text codec for knapsack instances and results.
//
// Instance format (whitespace separated, blank lines skipped):
//
//	<n> <capacity>
//	<value> <weight>      one line per item, n lines total
//
// Result format:
//
//	<value> 0
//	<x_0> <x_1> ... <x_{n-1}>
//
// The second header field of a result is a fixed marker expected by
// downstream tooling; it is always 0.
package ksio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/bnb"
)

// ParseInstance reads one instance from r: a "n capacity" header followed
// by n "value weight" lines. Blank lines are skipped, content after the
// last item line is ignored, and item indices follow the order the lines
// appear in.
//
// Only shape and integer syntax are checked here; bnb.Solve owns the
// semantic validation of the parsed numbers.
func ParseInstance(r io.Reader) ([]bnb.Item, int64, error) {
	var (
		sc     = bufio.NewScanner(r)
		lineNo int
		header []string
	)

	// Stage 1: locate and split the header line.
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		header = strings.Fields(line)
		break
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("ksio: read header: %w", err)
	}
	if header == nil {
		return nil, 0, ErrEmptyInput
	}
	if len(header) != 2 {
		return nil, 0, fmt.Errorf("%w: line %d has %d fields, want 2", ErrBadHeader, lineNo, len(header))
	}

	n, err := strconv.Atoi(header[0])
	if err != nil || n < 0 {
		return nil, 0, fmt.Errorf("%w: line %d: item count %q", ErrBadHeader, lineNo, header[0])
	}
	capacity, err := strconv.ParseInt(header[1], 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: line %d: capacity %q", ErrBadHeader, lineNo, header[1])
	}

	// Stage 2: collect exactly n item lines.
	items := make([]bnb.Item, 0, n)
	for len(items) < n && sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, 0, fmt.Errorf("%w: line %d has %d fields, want 2", ErrBadItemLine, lineNo, len(fields))
		}
		value, errV := strconv.ParseInt(fields[0], 10, 64)
		if errV != nil {
			return nil, 0, fmt.Errorf("%w: line %d: value %q", ErrBadItemLine, lineNo, fields[0])
		}
		weight, errW := strconv.ParseInt(fields[1], 10, 64)
		if errW != nil {
			return nil, 0, fmt.Errorf("%w: line %d: weight %q", ErrBadItemLine, lineNo, fields[1])
		}
		items = append(items, bnb.Item{Index: len(items), Value: value, Weight: weight})
	}
	if err = sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("ksio: read items: %w", err)
	}
	if len(items) < n {
		return nil, 0, fmt.Errorf("%w: declared %d, found %d", ErrItemCount, n, len(items))
	}

	return items, capacity, nil
}

// ParseInstanceFile opens path and parses it via ParseInstance.
func ParseInstanceFile(path string) ([]bnb.Item, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("ksio: open instance: %w", err)
	}
	defer f.Close()

	return ParseInstance(f)
}

// WriteInstance renders items and capacity in the instance format, one
// item per line in slice order.
func WriteInstance(w io.Writer, items []bnb.Item, capacity int64) error {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(items)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatInt(capacity, 10))
	sb.WriteByte('\n')

	var it bnb.Item
	for _, it = range items {
		sb.WriteString(strconv.FormatInt(it.Value, 10))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(it.Weight, 10))
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("ksio: write instance: %w", err)
	}

	return nil
}

// FormatResult renders res in the result format without a trailing
// newline. The selection line is omitted entirely for an empty instance.
func FormatResult(res bnb.Result) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(res.Value, 10))
	sb.WriteString(" 0")

	var i, x int
	for i, x = range res.Taken {
		if i == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}

// WriteResult writes FormatResult plus a final newline to w.
func WriteResult(w io.Writer, res bnb.Result) error {
	if _, err := io.WriteString(w, FormatResult(res)+"\n"); err != nil {
		return fmt.Errorf("ksio: write result: %w", err)
	}

	return nil
}
