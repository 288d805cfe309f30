package fields

import (
	"fmt"
	"regexp"

	"github.com/Nomadcxx/titlesink/internal/parser"
)

// The default field catalog registered by the CLI. The parser engine ships
// no handlers of its own; this package is its first consumer.
//
// Registration order matters: earlier handlers win field conflicts, and the
// removal handlers (site prefix, container extension) reshape the working
// title for everything after them.

// Pre-compiled patterns for the catalog
var (
	sitePrefixRegex = regexp.MustCompile(`(?i)^\[\s?([\w.-]+\.[a-z]{2,4})\s?\]`)

	resolutionRegex = regexp.MustCompile(`(?i)\b(4k|uhd|\d{3,4}[pi])\b`)

	yearRegex = regexp.MustCompile(`[\[(]?\b((?:19\d|20[0-2])\d)\b[)\]]?`)

	extendedRegex    = regexp.MustCompile(`\bEXTENDED\b`)
	properRegex      = regexp.MustCompile(`(?i)\b(?:PROPER|REAL[. ]PROPER)\b`)
	repackRegex      = regexp.MustCompile(`(?i)\bREPACK\b`)
	remasteredRegex  = regexp.MustCompile(`(?i)\bRemaster(?:ed)?\b`)
	unratedRegex     = regexp.MustCompile(`(?i)\b(?:UNRATED|UNCENSORED)\b`)
	documentaryRegex = regexp.MustCompile(`(?i)\bDOCU(?:mentary)?\b`)

	codecRegex    = regexp.MustCompile(`(?i)\b(x26[456]|h[. ]?26[456]|hevc|avc|av1|xvid|divx|mpeg2)\b`)
	bitDepthRegex = regexp.MustCompile(`(?i)\b(8|10|12)-?bits?\b`)
	hdrRegex      = regexp.MustCompile(`(?i)\b(HDR10\+|HDR10|HDR|HLG|DoVi|Dolby[. ]?Vision)\b`)

	audioRegex    = regexp.MustCompile(`(?i)\b(TrueHD|Atmos|DTS-HD[. ]?MA|DTS-HD|DTS-X|DTS|DDP|DD\+|EAC-?3|AC-?3|AAC|FLAC|OPUS|MP3|PCM)(?:\d[. ]\d)?\b`)
	channelsRegex = regexp.MustCompile(`([257][. ][01])\b`)

	sourceRegex = regexp.MustCompile(`(?i)\b(Blu-?Ray|BDRip|BRRip|REMUX|WEB-?DL|WEBRip|WEB|HDTV|PDTV|SDTV|DVDRip|DVDSCR|DVD|CAM|HDTS|TELESYNC)\b`)

	seasonEpisodeRegex = regexp.MustCompile(`(?i)\bs(\d{1,2})\s?e\d{1,4}\b`)
	seasonWordRegex    = regexp.MustCompile(`(?i)\bseason[. ](\d{1,2})\b`)
	seasonCrossRegex   = regexp.MustCompile(`\b(\d{1,2})x\d{1,4}\b`)

	episodeSERegex    = regexp.MustCompile(`(?i)\bs\d{1,2}\s?e(\d{1,4})\b`)
	episodeCrossRegex = regexp.MustCompile(`\b\d{1,2}x(\d{1,4})\b`)
	episodeWordRegex  = regexp.MustCompile(`(?i)\b(?:ep|episode)[. ]?(\d{1,4})\b`)

	containerRegex = regexp.MustCompile(`(?i)\.(mkv|mp4|avi|wmv|mpg|m2ts)$`)

	languagesRegex = regexp.MustCompile(`(?i)\b(MULTi|DUAL|VOSTFR|SUBBED|DUBBED|ITA|FRENCH|GERMAN|SPANISH|NORDiC|KOREAN|RUS)\b`)

	knownGroupRegex  = regexp.MustCompile(`(?i)-(YTS|YIFY|RARBG|SPARKS|GECKOS|EVO|NTG|CMRG|PSYCHD|MIRCREW|WILL1869|FGT)\b`)
	groupSuffixRegex = regexp.MustCompile(`-\s?([A-Za-z][A-Za-z0-9]+)$`)
)

type group struct {
	name     string
	register func(p *parser.Parser) error
}

// Catalog order, not alphabetical.
var groups = []group{
	{"site", registerSite},
	{"resolution", registerResolution},
	{"year", registerYear},
	{"flags", registerFlags},
	{"video", registerVideo},
	{"audio", registerAudio},
	{"source", registerSource},
	{"season", registerSeason},
	{"episode", registerEpisode},
	{"container", registerContainer},
	{"languages", registerLanguages},
	{"group", registerGroup},
}

// GroupNames returns every catalog group in registration order.
func GroupNames() []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.name)
	}
	return names
}

// RegisterAll wires the full catalog into the parser.
func RegisterAll(p *parser.Parser) error {
	return RegisterGroups(p, GroupNames())
}

// RegisterGroups wires the named groups in catalog order, regardless of the
// order they are listed in. Unknown names are configuration errors.
func RegisterGroups(p *parser.Parser, names []string) error {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	for _, g := range groups {
		if !wanted[g.name] {
			continue
		}
		delete(wanted, g.name)
		if err := g.register(p); err != nil {
			return fmt.Errorf("register %s handlers: %w", g.name, err)
		}
	}
	for name := range wanted {
		return fmt.Errorf("unknown handler group %q", name)
	}
	return nil
}

func registerSite(p *parser.Parser) error {
	// A "[site.com]" prefix is pure noise: strip it from the working title
	// without letting it cap the boundary at offset zero.
	opts := parser.Options{SkipIfAlreadyFound: true, Remove: true, SkipFromTitle: true}
	return p.Register("site", sitePrefixRegex, Lowercase, &opts)
}

func registerResolution(p *parser.Parser) error {
	return p.Register("resolution", resolutionRegex, Resolution, nil)
}

func registerYear(p *parser.Parser) error {
	return p.Register("year", yearRegex, YearRange(1900, 2029), nil)
}

func registerFlags(p *parser.Parser) error {
	flags := []struct {
		name string
		re   *regexp.Regexp
	}{
		{"extended", extendedRegex},
		{"proper", properRegex},
		{"repack", repackRegex},
		{"remastered", remasteredRegex},
		{"unrated", unratedRegex},
	}
	for _, f := range flags {
		opts := parser.Options{SkipIfAlreadyFound: true, Value: true}
		if err := p.Register(f.name, f.re, nil, &opts); err != nil {
			return err
		}
	}
	// A documentary marker says something about the content, not about
	// where the title ends.
	docOpts := parser.Options{SkipIfAlreadyFound: true, SkipFromTitle: true, Value: true}
	return p.Register("documentary", documentaryRegex, nil, &docOpts)
}

func registerVideo(p *parser.Parser) error {
	if err := p.Register("codec", codecRegex, Codec, nil); err != nil {
		return err
	}
	if err := p.Register("bitDepth", bitDepthRegex, func(value string, prev any) any {
		return value + "bit"
	}, nil); err != nil {
		return err
	}
	return p.Register("hdr", hdrRegex, Lowercase, nil)
}

func registerAudio(p *parser.Parser) error {
	if err := p.Register("audio", audioRegex, Lowercase, nil); err != nil {
		return err
	}
	return p.Register("channels", channelsRegex, Channels, nil)
}

func registerSource(p *parser.Parser) error {
	return p.Register("source", sourceRegex, Source, nil)
}

func registerSeason(p *parser.Parser) error {
	if err := p.Register("season", seasonEpisodeRegex, Integer, nil); err != nil {
		return err
	}
	if err := p.Register("season", seasonWordRegex, Integer, nil); err != nil {
		return err
	}
	return p.Register("season", seasonCrossRegex, Integer, nil)
}

func registerEpisode(p *parser.Parser) error {
	if err := p.Register("episode", episodeSERegex, Integer, nil); err != nil {
		return err
	}
	if err := p.Register("episode", episodeCrossRegex, Integer, nil); err != nil {
		return err
	}
	return p.Register("episode", episodeWordRegex, Integer, nil)
}

func registerContainer(p *parser.Parser) error {
	// Removing the extension lets the trailing group handler see the real
	// end of the name.
	opts := parser.Options{SkipIfAlreadyFound: true, Remove: true}
	return p.Register("container", containerRegex, Lowercase, &opts)
}

func registerLanguages(p *parser.Parser) error {
	// A language token before everything else is usually part of the title
	// ("French Connection"), so only trust it once other metadata anchors
	// the string.
	opts := parser.Options{SkipIfAlreadyFound: true, SkipIfFirst: true}
	return p.Register("languages", languagesRegex, Lowercase, &opts)
}

func registerGroup(p *parser.Parser) error {
	if err := p.Register("group", knownGroupRegex, nil, nil); err != nil {
		return err
	}
	opts := parser.Options{SkipIfAlreadyFound: true, SkipIfFirst: true}
	return p.Register("group", groupSuffixRegex, func(value string, prev any) any {
		// Two-letter suffixes are almost always source markers (-DL, -HD),
		// not release groups.
		if len(value) < 3 {
			return nil
		}
		return value
	}, &opts)
}
