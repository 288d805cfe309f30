package ui_test

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nomadcxx/titlesink/internal/parser"
	"github.com/Nomadcxx/titlesink/internal/ui"
)

func newYearParser(t *testing.T) *parser.Parser {
	t.Helper()
	p := parser.New()
	if err := p.Register("year", regexp.MustCompile(`\b(20\d{2})\b`), nil, nil); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return p
}

func TestTypingReparsesInput(t *testing.T) {
	m := ui.NewModel(newYearParser(t), false)

	ret, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Movie Name 2020")})
	typed := ret.(ui.Model)

	result := typed.Result()
	if result.Fields["year"] != "2020" {
		t.Fatalf("expected year 2020 after typing, got %v", result.Fields["year"])
	}
	if result.Title != "Movie Name" {
		t.Fatalf("expected title 'Movie Name', got %q", result.Title)
	}

	if !strings.Contains(typed.View(), "Movie Name") {
		t.Error("expected view to render the parsed title")
	}
}

func TestEscQuits(t *testing.T) {
	m := ui.NewModel(newYearParser(t), false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command on esc")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg on esc")
	}
}
