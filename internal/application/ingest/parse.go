package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date layouts seen across marketplace exports, tried in order
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"02/01/2006",
}

// parseInt parses an integer cell, tolerating decimal notation such as
// "5.0" that spreadsheet exports produce. Unparseable input yields def.
func parseInt(s string, def int64) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d.IntPart()
	}
	return def
}

// parseDecimal parses a money cell, falling back to a comma decimal
// separator. Unparseable input yields zero.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	if strings.Contains(s, ",") {
		if d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ".")); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// parseDate tries the known export layouts; a zero time means the cell
// was absent or unreadable and the event date defaults downstream.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
