package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// Pre-compiled regexes shared by every parse call
var (
	underscoreRunRegex = regexp.MustCompile(`_+`)
	leadingTagRegex    = regexp.MustCompile(`^\[([^\[\]]+)\]`)
)

// Transform converts a raw regex match into the value stored for a field.
// value is the first capture group of the match (or the whole match when the
// pattern has no groups); prev is whatever is already stored for the field.
// Returning nil or another empty value rejects the match.
type Transform func(value string, prev any) any

// HandlerFunc is the calling contract every registered handler is reduced to.
// It inspects the context and returns nil (no match) or a Match describing
// what it claimed.
type HandlerFunc func(ctx *Context) *Match

// Match reports a successful handler application back to the engine.
type Match struct {
	RawMatch      string
	MatchIndex    int
	Remove        bool
	SkipFromTitle bool
}

// Location records where a field first matched during a parse call.
// It is written once per field and never overwritten, so ordering decisions
// always refer to the first occurrence.
type Location struct {
	RawMatch   string
	MatchIndex int
}

// Context is the mutable state threaded through the handler chain for a
// single Parse call. Title shrinks when handlers remove their matches;
// Result holds transformed field values; Matched holds first-match locations.
type Context struct {
	Title   string
	Result  map[string]any
	Matched map[string]Location
}

// Options control how a pattern handler interacts with the rest of the chain.
// The zero value disables every flag; use DefaultOptions for the standard
// baseline (SkipIfAlreadyFound on).
type Options struct {
	// SkipIfAlreadyFound makes the handler a no-op when its field already
	// holds a non-empty value.
	SkipIfAlreadyFound bool

	// SkipFromTitle keeps a successful match from lowering the title
	// boundary.
	SkipFromTitle bool

	// SkipIfFirst rejects a match that precedes every field matched so far.
	SkipIfFirst bool

	// SkipIfBefore rejects a match that precedes any of the named fields
	// already matched in this call.
	SkipIfBefore []string

	// Remove splices the matched text out of the working title so later
	// handlers cannot re-match it.
	Remove bool

	// Value, when non-nil, is stored instead of the transformer output.
	Value any
}

// DefaultOptions returns the baseline handler options.
func DefaultOptions() Options {
	return Options{SkipIfAlreadyFound: true}
}

// Result is the outcome of a Parse call: the cleaned display title plus
// every field the handler chain claimed.
type Result struct {
	Title  string
	Fields map[string]any
}

// Parser owns an ordered list of handlers. Registration order is the
// execution order and is semantically significant: earlier handlers win
// field conflicts and shape the working title seen by later ones.
//
// A Parser is immutable once registration is done; Parse is safe for
// concurrent use after that point.
type Parser struct {
	handlers []namedHandler
}

type namedHandler struct {
	name string
	run  HandlerFunc
}

// New creates an empty Parser. Handlers must be registered before Parse.
func New() *Parser {
	return &Parser{}
}

// Register adds a handler for the named field. matcher is either a
// *regexp.Regexp (producing a pattern handler with the given transform and
// options) or a HandlerFunc invoked as-is. A nil opts means DefaultOptions.
// Registering any other matcher shape is a configuration error.
func (p *Parser) Register(name string, matcher any, transform Transform, opts *Options) error {
	options := DefaultOptions()
	if opts != nil {
		options = *opts
	}

	switch m := matcher.(type) {
	case *regexp.Regexp:
		p.handlers = append(p.handlers, namedHandler{
			name: name,
			run:  patternHandler(name, m, transform, options),
		})
	case HandlerFunc:
		p.handlers = append(p.handlers, namedHandler{name: name, run: m})
	case func(ctx *Context) *Match:
		p.handlers = append(p.handlers, namedHandler{name: name, run: m})
	default:
		return fmt.Errorf("register %s: matcher must be a *regexp.Regexp or a HandlerFunc, got %T", name, matcher)
	}

	return nil
}

// Parse runs the handler chain over rawTitle and returns the cleaned title
// plus the matched fields. It never fails: handlers that cannot claim a
// value simply decline.
func (p *Parser) Parse(rawTitle string) Result {
	ctx := &Context{
		Title:   underscoreRunRegex.ReplaceAllString(rawTitle, " "),
		Result:  make(map[string]any),
		Matched: make(map[string]Location),
	}
	endOfTitle := len(ctx.Title)

	for _, h := range p.handlers {
		match := h.run(ctx)
		if match == nil {
			continue
		}

		if match.Remove {
			ctx.Title = ctx.Title[:match.MatchIndex] + ctx.Title[match.MatchIndex+len(match.RawMatch):]
		}
		if !match.SkipFromTitle && match.MatchIndex < endOfTitle {
			// The title never extends past the earliest metadata found.
			endOfTitle = match.MatchIndex
		}
		if match.Remove && match.SkipFromTitle && match.MatchIndex < endOfTitle {
			// Removed text before the boundary no longer occupies any
			// offsets; pull the boundary back by the removed length.
			endOfTitle -= len(match.RawMatch)
			if endOfTitle < 0 {
				endOfTitle = 0
			}
		}
	}

	if endOfTitle > len(ctx.Title) {
		endOfTitle = len(ctx.Title)
	}

	ctx.Result["title"] = CleanTitle(ctx.Title[:endOfTitle])

	return Result{
		Title:  ctx.Result["title"].(string),
		Fields: ctx.Result,
	}
}

// patternHandler reduces a regex + transform + options to the uniform
// handler contract. All conflict rules live here so arbitrary HandlerFuncs
// stay free to implement their own.
func patternHandler(name string, re *regexp.Regexp, transform Transform, opts Options) HandlerFunc {
	return func(ctx *Context) *Match {
		if opts.SkipIfAlreadyFound && !isEmptyValue(ctx.Result[name]) {
			return nil
		}

		loc := re.FindStringSubmatchIndex(ctx.Title)
		if loc == nil {
			return nil
		}
		rawMatch := ctx.Title[loc[0]:loc[1]]
		matchIndex := loc[0]

		transformed := any(cleanMatch(ctx.Title, loc))
		if transform != nil {
			transformed = transform(cleanMatch(ctx.Title, loc), ctx.Result[name])
		}
		if isEmptyValue(transformed) {
			return nil
		}

		// Text already isolated inside a leading [tag] is release-group
		// territory; it must not cap the title on top of that.
		skipFromTitle := opts.SkipFromTitle
		if tag := leadingTagRegex.FindStringSubmatch(ctx.Title); tag != nil && containsMatch(tag[1], rawMatch) {
			skipFromTitle = true
		}

		if opts.SkipIfFirst && precedesAllMatched(ctx.Matched, name, matchIndex) {
			return nil
		}
		for _, field := range opts.SkipIfBefore {
			if prior, ok := ctx.Matched[field]; ok && prior.MatchIndex > matchIndex {
				return nil
			}
		}

		if _, ok := ctx.Matched[name]; !ok {
			ctx.Matched[name] = Location{RawMatch: rawMatch, MatchIndex: matchIndex}
		}
		if opts.Value != nil {
			ctx.Result[name] = opts.Value
		} else {
			ctx.Result[name] = transformed
		}

		return &Match{
			RawMatch:      rawMatch,
			MatchIndex:    matchIndex,
			Remove:        opts.Remove,
			SkipFromTitle: skipFromTitle,
		}
	}
}

// cleanMatch returns the first capture group of a match, falling back to the
// whole match text when the pattern has no groups or the group is absent.
func cleanMatch(title string, loc []int) string {
	if len(loc) > 2 && loc[2] >= 0 {
		return title[loc[2]:loc[3]]
	}
	return title[loc[0]:loc[1]]
}

// precedesAllMatched reports whether index comes before every field matched
// so far, ignoring the handler's own field. False when nothing else matched.
func precedesAllMatched(matched map[string]Location, name string, index int) bool {
	others := 0
	for field, loc := range matched {
		if field == name {
			continue
		}
		others++
		if index >= loc.MatchIndex {
			return false
		}
	}
	return others > 0
}

func containsMatch(tag, rawMatch string) bool {
	return rawMatch != "" && strings.Contains(tag, rawMatch)
}

// isEmptyValue reports whether a transformer output counts as a rejection.
// Empty strings, false booleans, and zero integers all decline the match.
func isEmptyValue(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case int:
		return value == 0
	}
	return false
}
