// Package sqlcheck validates SQL text before the agent is allowed to run it.
// Only read-only, single-statement queries pass. This is a static keyword
// check; the query repository additionally executes inside a READ ONLY
// transaction, so the database rejects anything that slips through.
package sqlcheck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var commentPattern = regexp.MustCompile(`--[^\n]*|/\*[\s\S]*?\*/`)

var forbiddenKeywords = []string{
	"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "TRUNCATE",
	"CREATE", "GRANT", "REVOKE", "COPY", "VACUUM", "MERGE",
}

var wordPattern = regexp.MustCompile(`[A-Z_]+`)

// Validate returns an error unless query is a single read-only statement.
func Validate(query string) error {
	normalized := strings.ToUpper(strings.TrimSpace(query))
	normalized = strings.TrimSpace(commentPattern.ReplaceAllString(normalized, " "))

	if normalized == "" {
		return errors.New("query cannot be empty")
	}

	if !strings.HasPrefix(normalized, "SELECT") &&
		!strings.HasPrefix(normalized, "WITH") &&
		!strings.HasPrefix(normalized, "EXPLAIN") {
		return errors.New("only SELECT, WITH and EXPLAIN statements are allowed")
	}

	// A trailing semicolon is fine; anything after it is a second statement.
	trimmed := strings.TrimSuffix(normalized, ";")
	if strings.Contains(trimmed, ";") {
		return errors.New("multiple statements are not allowed")
	}

	for _, word := range wordPattern.FindAllString(normalized, -1) {
		for _, kw := range forbiddenKeywords {
			if word == kw {
				return fmt.Errorf("statement '%s' is not allowed: queries must be read-only", kw)
			}
		}
	}

	return nil
}

var limitPattern = regexp.MustCompile(`(?i)\bLIMIT\s+\d+`)

// EnsureLimit appends a LIMIT clause when the query does not already carry
// one, so an unbounded SELECT cannot drag the whole table into the prompt.
func EnsureLimit(query string, max int) string {
	if limitPattern.MatchString(query) {
		return query
	}
	return fmt.Sprintf("%s LIMIT %d", strings.TrimSuffix(strings.TrimSpace(query), ";"), max)
}
