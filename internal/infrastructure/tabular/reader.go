// Package tabular turns delimited-text uploads into rows of named string
// cells. It owns no file-format knowledge beyond that: column meaning is
// resolved downstream by the per-marketplace column mappings.
package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Row is one data row keyed by the file's own header names.
// LineNumber is 1-indexed with the header as line 1.
type Row struct {
	LineNumber int
	Cells      map[string]string
}

// Get returns the cell value for a header name
func (r Row) Get(header string) string {
	return r.Cells[header]
}

// IsEmpty returns true if the row has no non-empty cells
func (r Row) IsEmpty() bool {
	for _, v := range r.Cells {
		if v != "" {
			return false
		}
	}
	return true
}

// Document is a fully read tabular file: the header names in file order
// plus every non-empty data row.
type Document struct {
	Headers []string
	Rows    []Row
}

// HasHeader reports whether the document contains the given header,
// compared case- and whitespace-insensitively.
func (d Document) HasHeader(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, h := range d.Headers {
		if strings.ToLower(strings.TrimSpace(h)) == name {
			return true
		}
	}
	return false
}

// Reader reads a delimited file into a Document
type Reader struct {
	delimiter rune
	reader    *csv.Reader
	buf       *bufio.Reader
	headers   []string
	line      int
}

// Option is a functional option for Reader configuration
type Option func(*Reader)

// WithDelimiter sets the field delimiter (default is comma)
func WithDelimiter(d rune) Option {
	return func(r *Reader) {
		r.delimiter = d
	}
}

// NewReader creates a reader over r, stripping a UTF-8 BOM if present and
// rejecting content that is not valid UTF-8.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	reader := &Reader{delimiter: ','}
	for _, opt := range opts {
		opt(reader)
	}

	reader.buf = bufio.NewReader(r)

	head, err := reader.buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = reader.buf.Discard(3)
	}

	if err := validateUTF8(reader.buf); err != nil {
		return nil, err
	}

	reader.reader = csv.NewReader(reader.buf)
	reader.reader.Comma = reader.delimiter
	reader.reader.LazyQuotes = true
	reader.reader.TrimLeadingSpace = true
	reader.reader.FieldsPerRecord = -1

	return reader, nil
}

func validateUTF8(r *bufio.Reader) error {
	const checkSize = 4096
	content, err := r.Peek(checkSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file for encoding validation: %w", err)
	}
	if len(content) == 0 {
		return ErrEmptyFile
	}
	if !utf8.Valid(content) {
		return ErrInvalidEncoding
	}
	return nil
}

// ReadDocument reads the header row and all data rows. Completely empty
// rows are dropped; short rows are padded with empty cells.
func (r *Reader) ReadDocument() (*Document, error) {
	record, err := r.reader.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	r.headers = make([]string, len(record))
	for i, h := range record {
		r.headers[i] = strings.TrimSpace(h)
	}
	if len(r.headers) == 0 {
		return nil, ErrMissingHeader
	}
	r.line = 1

	doc := &Document{Headers: r.headers}
	for {
		row, err := r.readRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return doc, err
		}
		if row.IsEmpty() {
			continue
		}
		doc.Rows = append(doc.Rows, *row)
	}

	return doc, nil
}

func (r *Reader) readRow() (*Row, error) {
	record, err := r.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		r.line++
		return nil, fmt.Errorf("error reading row %d: %w", r.line, err)
	}

	r.line++
	row := &Row{
		LineNumber: r.line,
		Cells:      make(map[string]string, len(r.headers)),
	}
	for i, header := range r.headers {
		if i < len(record) {
			row.Cells[header] = strings.TrimSpace(record[i])
		} else {
			row.Cells[header] = ""
		}
	}

	return row, nil
}
