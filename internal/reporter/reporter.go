package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one parsed release name in a report
type Entry struct {
	Input  string
	Title  string
	Fields map[string]any
}

// Report represents a batch parse run
type Report struct {
	Timestamp time.Time
	Source    string // file the inputs came from, or "stdin"
	Entries   []Entry
}

// Tokens preserved verbatim during title casing
var (
	acronymRegex = regexp.MustCompile(`^\d*[A-Z]{2,}\d*$`)
	ordinalRegex = regexp.MustCompile(`(?i)^\d+(st|nd|rd|th)$`)
	abbrevRegex  = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$`)
)

// Generate creates a timestamped report file in dir
func Generate(report Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := report.Timestamp.Format("20060102_150405")
	filename := filepath.Join(dir, timestamp+".txt")

	content := buildReportContent(report)

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return filename, nil
}

// buildReportContent generates the report text
func buildReportContent(report Report) string {
	var sb strings.Builder

	sb.WriteString("TITLESINK PARSE REPORT\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Source: %s\n", report.Source))
	sb.WriteString(fmt.Sprintf("Names parsed: %d\n", len(report.Entries)))
	sb.WriteString("\n")

	for i, entry := range report.Entries {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, entry.Input))
		sb.WriteString(fmt.Sprintf("   title: %s\n", entry.Title))
		for _, field := range FieldNames(entry.Fields) {
			sb.WriteString(fmt.Sprintf("   %s: %v\n", field, entry.Fields[field]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FieldNames returns the metadata field names of an entry in sorted order,
// leaving out the title itself.
func FieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == "title" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayTitle re-cases a cleaned title for display while leaving acronyms
// (8MM, RIPD), ordinals (25th) and dotted abbreviations (U.S.) alone.
func DisplayTitle(title string) string {
	caser := cases.Title(language.English)

	words := strings.Fields(title)
	for i, word := range words {
		if acronymRegex.MatchString(word) || abbrevRegex.MatchString(word) {
			continue
		}
		if ordinalRegex.MatchString(word) {
			words[i] = strings.ToLower(word)
			continue
		}
		words[i] = caser.String(word)
	}

	return strings.Join(words, " ")
}
