// Package csv streams header-keyed rows from CSV datasets.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure RowSource implements the interface.
var _ driven.RowSource = (*RowSource)(nil)

// RowSource reads CSV files whose first record is the header.
type RowSource struct {
	comma rune
}

// Option configures a RowSource.
type Option func(*RowSource)

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(r rune) Option {
	return func(s *RowSource) {
		s.comma = r
	}
}

// New creates a CSV row source.
func New(opts ...Option) *RowSource {
	s := &RowSource{comma: ','}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Each calls fn for every data row, keyed by header name. Rows shorter than
// the header get empty values for the missing columns; extra cells are dropped.
func (s *RowSource) Each(ctx context.Context, path string, fn func(row map[string]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: CSV file not found at %s", domain.ErrMissingSource, path)
		}
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = s.comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.ReuseRecord = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: csv header: %v", domain.ErrParse, err)
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: csv: %v", domain.ErrParse, err)
		}

		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}
