package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/titlesink/internal/config"
	"github.com/Nomadcxx/titlesink/internal/fields"
	"github.com/Nomadcxx/titlesink/internal/parser"
	"github.com/Nomadcxx/titlesink/internal/reporter"
	"github.com/Nomadcxx/titlesink/internal/ui"
)

var (
	jsonOutput bool
	titleCase  bool

	// Version information (set via -ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const exampleConfig = `[handlers]
groups = []  # empty means the full catalog

[output]
json = false
title_case = false

[reports]
directory = ""  # empty means ~/.local/share/titlesink/reports
`

var rootCmd = &cobra.Command{
	Use:   "titlesink",
	Short: "Extract clean titles and metadata from release names",
	Long:  getLongDescription(),
}

var parseCmd = &cobra.Command{
	Use:   "parse [name...]",
	Short: "Parse release names given as arguments or on stdin",
	Run:   runParse,
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Parse a file of release names and write a report",
	Args:  cobra.ExactArgs(1),
	Run:   runBatch,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Parse release names interactively in a TUI",
	Run:   runInteractive,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration file location and contents",
	Run:   runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("titlesink %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of styled text")
	parseCmd.Flags().BoolVar(&titleCase, "title-case", false, "re-case the cleaned title for display")
	interactiveCmd.Flags().BoolVar(&titleCase, "title-case", false, "re-case the cleaned title for display")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) {
	cfg, p := mustSetup()

	names := args
	if len(names) == 0 {
		names = readLines(os.Stdin)
	}

	useJSON := jsonOutput || cfg.Output.JSON
	useTitleCase := titleCase || cfg.Output.TitleCase

	for _, name := range names {
		result := p.Parse(name)

		if useJSON {
			data, err := json.Marshal(result.Fields)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			continue
		}

		fmt.Println(formatResult(name, result, useTitleCase))
	}
}

func runBatch(cmd *cobra.Command, args []string) {
	cfg, p := mustSetup()

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	names := readLines(f)

	report := reporter.Report{
		Timestamp: time.Now(),
		Source:    args[0],
		Entries:   parseEntries(p, names),
	}

	filename, err := reporter.Generate(report, cfg.ReportDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d names from %s\n", len(report.Entries), report.Source)
	fmt.Printf("Report saved to: %s\n", filename)
}

func runInteractive(cmd *cobra.Command, args []string) {
	cfg, p := mustSetup()

	if err := ui.Run(p, titleCase || cfg.Output.TitleCase); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runConfig(cmd *cobra.Command, args []string) {
	configPath, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Configuration file: %s\n\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println("Config file does not exist. Create it with:")
		fmt.Println("\n  mkdir -p ~/.config/titlesink")
		fmt.Println("  cat > ~/.config/titlesink/config.toml <<EOF")
		fmt.Print(exampleConfig)
		fmt.Println("EOF")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Current configuration:")
	fmt.Printf("\nHandler groups (%d):\n", len(cfg.EnabledGroups()))
	for _, group := range cfg.EnabledGroups() {
		fmt.Printf("  - %s\n", group)
	}

	fmt.Printf("\nOutput settings:\n")
	fmt.Printf("  JSON: %v\n", cfg.Output.JSON)
	fmt.Printf("  Title case: %v\n", cfg.Output.TitleCase)
	fmt.Printf("\nReport directory: %s\n", cfg.ReportDir())
}

// mustSetup loads the config and builds the parser, exiting on any
// configuration error.
func mustSetup() (*config.Config, *parser.Parser) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	p, err := buildParser(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error registering handlers: %v\n", err)
		os.Exit(1)
	}

	return cfg, p
}

// buildParser wires the enabled handler groups into a fresh parser
func buildParser(cfg *config.Config) (*parser.Parser, error) {
	p := parser.New()
	if err := fields.RegisterGroups(p, cfg.EnabledGroups()); err != nil {
		return nil, err
	}
	return p, nil
}

// formatResult renders one parse result as styled text
func formatResult(input string, result parser.Result, useTitleCase bool) string {
	var b strings.Builder

	title := result.Title
	if useTitleCase {
		title = reporter.DisplayTitle(title)
	}

	b.WriteString(ui.MutedStyle.Render(input) + "\n")
	b.WriteString("  " + ui.FieldStyle.Render("title") + "  " + ui.TitleStyle.Render(title))
	for _, field := range reporter.FieldNames(result.Fields) {
		value := fmt.Sprintf("%v", result.Fields[field])
		b.WriteString("\n  " + ui.FieldStyle.Render(field) + "  " + ui.ValueStyle.Render(value))
	}

	return b.String()
}

// parseEntries parses every name into a report entry
func parseEntries(p *parser.Parser, names []string) []reporter.Entry {
	entries := make([]reporter.Entry, 0, len(names))
	for _, name := range names {
		result := p.Parse(name)
		entries = append(entries, reporter.Entry{
			Input:  name,
			Title:  result.Title,
			Fields: result.Fields,
		})
	}
	return entries
}

// readLines reads non-empty lines from r
func readLines(r *os.File) []string {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func getLongDescription() string {
	return ui.FormatASCIIHeader() + "\n\n" +
		"titlesink extracts a clean display title and metadata fields from noisy\n" +
		"release names. Field handlers are configurable per group; see 'titlesink config'."
}
