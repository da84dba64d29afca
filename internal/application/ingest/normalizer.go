package ingest

import (
	"fmt"
	"strings"

	"github.com/sellerledger/backend/internal/domain/market"
	"github.com/sellerledger/backend/internal/infrastructure/tabular"
)

// CanonicalRow is one raw row after its headers have been renamed to
// canonical field names. Unmapped external columns are carried through
// under their original header and ignored downstream.
type CanonicalRow struct {
	LineNumber int
	Fields     map[string]string
}

// Get returns the value of a canonical field, trimmed
func (r CanonicalRow) Get(field string) string {
	return strings.TrimSpace(r.Fields[field])
}

// Has returns true when the field is present, even if empty
func (r CanonicalRow) Has(field string) bool {
	_, ok := r.Fields[field]
	return ok
}

// NormalizeRow renames one raw row's cells per the resolved mapping.
// Matching on the external side is case- and whitespace-insensitive. It
// invents no defaults for canonical fields the file does not carry; that
// is the file kind's responsibility. Two external columns feeding the
// same canonical field is a mapping fault and fails the row.
func NormalizeRow(row tabular.Row, mapping map[string]string) (CanonicalRow, error) {
	out := CanonicalRow{
		LineNumber: row.LineNumber,
		Fields:     make(map[string]string, len(row.Cells)),
	}

	for header, value := range row.Cells {
		key := header
		if canonical, ok := mapping[market.NormalizeHeader(header)]; ok {
			key = canonical
		}
		if _, exists := out.Fields[key]; exists {
			return CanonicalRow{}, fmt.Errorf("duplicate column for field %q", key)
		}
		out.Fields[key] = value
	}

	return out, nil
}

// mappedHeaders returns the canonical fields the document's headers cover
// once the mapping is applied.
func mappedHeaders(doc tabular.Document, mapping map[string]string) map[string]bool {
	covered := make(map[string]bool, len(doc.Headers))
	for _, header := range doc.Headers {
		if canonical, ok := mapping[market.NormalizeHeader(header)]; ok {
			covered[canonical] = true
		} else {
			covered[header] = true
		}
	}
	return covered
}
