// Package dates parses the heterogeneous date strings found in bank
// statement exports into comparable year/month values.
//
// Parsing is deterministic and side-effect-free: these functions run across
// large transaction sets repeatedly for filtering, so they never allocate
// beyond the regexp engine and never panic on garbage input.
package dates

import (
	"regexp"
	"strconv"
	"strings"
)

// YearMonth is a comparable (year, month) pair. Month is 1-12.
type YearMonth struct {
	Year  int
	Month int
}

var (
	isoRe    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-\d{1,2}`)
	slash4Re = regexp.MustCompile(`(\d{1,2})/\d{1,2}/(\d{4})`)
	slash2Re = regexp.MustCompile(`(\d{1,2})/\d{1,2}/(\d{2})\b`)
	dashRe   = regexp.MustCompile(`^(\d{1,2})-\d{1,2}-(\d{2,4})`)
	slashRe  = regexp.MustCompile(`^(\d{1,2})/\d{1,2}/(\d{2,4})`)
	any4Re   = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
)

var monthNames = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// expandYear applies the two-digit year pivot: <50 means 2000s, else 1900s.
func expandYear(raw string) int {
	y, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	if len(raw) == 2 {
		if y < 50 {
			return 2000 + y
		}
		return 1900 + y
	}
	return y
}

// Year extracts a 4-digit year from a date string. Handles ISO, US slash
// (4- and 2-digit years), textual months, and a last-resort bare-year scan.
func Year(dateStr string) (int, bool) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return 0, false
	}

	if m := isoRe.FindStringSubmatch(s); m != nil {
		return expandYear(m[1]), true
	}
	if m := slash4Re.FindStringSubmatch(s); m != nil {
		return expandYear(m[2]), true
	}
	if m := slash2Re.FindStringSubmatch(s); m != nil {
		return expandYear(m[2]), true
	}
	if m := any4Re.FindStringSubmatch(s); m != nil {
		return expandYear(m[1]), true
	}
	return 0, false
}

// YearMonthOf extracts both year and month from a date string, trying
// formats in order of specificity: ISO, US slash, dash-delimited, textual
// month names, then a year-only fallback that reports January.
func YearMonthOf(dateStr string) (YearMonth, bool) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return YearMonth{}, false
	}

	if m := isoRe.FindStringSubmatch(s); m != nil {
		year := expandYear(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return YearMonth{Year: year, Month: month}, true
		}
	}

	// US slash, MM/DD/YYYY or MM/DD/YY
	if m := slashRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		year := expandYear(m[2])
		if month >= 1 && month <= 12 && year != 0 {
			return YearMonth{Year: year, Month: month}, true
		}
	}

	// Dash-delimited MM-DD-YYYY
	if m := dashRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		year := expandYear(m[2])
		if month >= 1 && month <= 12 && year != 0 {
			return YearMonth{Year: year, Month: month}, true
		}
	}

	// Textual month names: "Jan 5, 2024" or "5 Jan 2024"
	lower := strings.ToLower(s)
	for i, name := range monthNames {
		if strings.Contains(lower, name) {
			if year, ok := Year(s); ok {
				return YearMonth{Year: year, Month: i + 1}, true
			}
			break
		}
	}

	if year, ok := Year(s); ok {
		return YearMonth{Year: year, Month: 1}, true
	}
	return YearMonth{}, false
}
