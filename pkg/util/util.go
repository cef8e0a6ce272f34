// Package util holds small parsing and clock helpers shared across layers.
package util

import (
	"strconv"
	"strings"
	"time"
)

// NowUTC is the default clock for services that keep a swappable now func.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// AtoiDefault parses s as a base 10 integer and returns def when s is blank
// or not a number.
func AtoiDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// SplitCSV splits a comma separated list, trimming blanks.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
