package main

import (
	"strings"
	"testing"

	"github.com/Nomadcxx/titlesink/internal/config"
)

func TestBuildParserWithDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	p, err := buildParser(cfg)
	if err != nil {
		t.Fatalf("buildParser failed: %v", err)
	}

	result := p.Parse("Movie.Name.2020.1080p.BluRay.x264-GROUP")
	if result.Title != "Movie Name" {
		t.Errorf("title = %q, want %q", result.Title, "Movie Name")
	}
	if result.Fields["year"] != 2020 {
		t.Errorf("year = %v, want 2020", result.Fields["year"])
	}
}

func TestBuildParserWithSubset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Handlers.Groups = []string{"year"}

	p, err := buildParser(cfg)
	if err != nil {
		t.Fatalf("buildParser failed: %v", err)
	}

	result := p.Parse("Movie 2020 1080p")
	if result.Fields["year"] != 2020 {
		t.Errorf("year = %v, want 2020", result.Fields["year"])
	}
	if _, ok := result.Fields["resolution"]; ok {
		t.Error("resolution handler should not be registered")
	}
}

func TestParseEntries(t *testing.T) {
	cfg := config.DefaultConfig()
	p, err := buildParser(cfg)
	if err != nil {
		t.Fatalf("buildParser failed: %v", err)
	}

	entries := parseEntries(p, []string{
		"Movie.Name.2020.1080p",
		"Show.Name.S01E01.HDTV",
	})

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Movie Name" {
		t.Errorf("entries[0].Title = %q, want %q", entries[0].Title, "Movie Name")
	}
	if entries[1].Fields["season"] != 1 {
		t.Errorf("entries[1] season = %v, want 1", entries[1].Fields["season"])
	}
}

func TestFormatResult(t *testing.T) {
	cfg := config.DefaultConfig()
	p, err := buildParser(cfg)
	if err != nil {
		t.Fatalf("buildParser failed: %v", err)
	}

	result := p.Parse("movie name 2020 1080p")
	out := formatResult("movie name 2020 1080p", result, true)

	// Title casing applied for display only.
	if !strings.Contains(out, "Movie Name") {
		t.Errorf("formatted output missing display title: %q", out)
	}
	if !strings.Contains(out, "1080p") {
		t.Errorf("formatted output missing resolution: %q", out)
	}
}
