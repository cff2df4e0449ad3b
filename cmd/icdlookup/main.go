// Package main implements the icdlookup CLI tool, a thin front end
// over the icd catalog: exact lookup, fuzzy search, and random
// sampling of ICD classification codes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/gofhir/icd"
)

const (
	version = "0.1.0"
	usage   = `icdlookup - ICD classification code lookup

Usage:
  icdlookup [options] find <code>
  icdlookup [options] search <code>
  icdlookup [options] samples <count>

Examples:
  icdlookup find A00.0
  icdlookup -subset icd9-diag find 001.0
  icdlookup search A001
  icdlookup -subset icd10-proc samples 5
  icdlookup -output json search J449
  icdlookup -list-subsets

Exit codes:
  0  success
  1  code not found
  2  usage or load error

Options:
`
)

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Config holds CLI configuration.
type Config struct {
	Subset      string
	Output      OutputFormat
	ListSubsets bool
	ShowVersion bool
}

// findOutput is the JSON output of the find command.
type findOutput struct {
	Query string     `json:"query"`
	Found bool       `json:"found"`
	Entry *icd.Entry `json:"entry,omitempty"`
}

// searchOutput is the JSON output of the search command.
type searchOutput struct {
	Query   string      `json:"query"`
	Matches []icd.Match `json:"matches"`
}

// samplesOutput is the JSON output of the samples command.
type samplesOutput struct {
	Subset  string      `json:"subset"`
	Count   int         `json:"count"`
	Entries []icd.Entry `json:"entries"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := &Config{}
	var output string

	fs := flag.NewFlagSet("icdlookup", flag.ExitOnError)
	fs.StringVar(&cfg.Subset, "subset", "", "restrict to one subset (see -list-subsets)")
	fs.StringVar(&output, "output", "text", "output format: text or json")
	fs.BoolVar(&cfg.ListSubsets, "list-subsets", false, "list the known subsets and exit")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	fs.Parse(args)

	cfg.Output = OutputFormat(output)
	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		fmt.Fprintf(os.Stderr, "icdlookup: unknown output format %q\n", output)
		return 2
	}

	if cfg.ShowVersion {
		fmt.Println("icdlookup " + version)
		return 0
	}
	if cfg.ListSubsets {
		for _, s := range icd.Subsets() {
			fmt.Printf("%-12s %s\n", s, s.DisplayName())
		}
		return 0
	}

	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return 2
	}

	index, err := icd.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "icdlookup:", err)
		return 2
	}

	switch rest[0] {
	case "find":
		return runFind(index, cfg, rest[1])
	case "search":
		return runSearch(index, cfg, rest[1])
	case "samples":
		return runSamples(index, cfg, rest[1])
	default:
		fs.Usage()
		return 2
	}
}

func runFind(index *icd.Index, cfg *Config, query string) int {
	var (
		entry icd.Entry
		found bool
	)

	if cfg.Subset != "" {
		subset, err := icd.ParseSubset(cfg.Subset)
		if err != nil {
			fmt.Fprintln(os.Stderr, "icdlookup:", err)
			return 2
		}
		entry, found, _ = index.FindIn(subset, query)
	} else {
		entry, found = index.Find(query)
	}

	if cfg.Output == OutputJSON {
		out := findOutput{Query: query, Found: found}
		if found {
			out.Entry = &entry
		}
		printJSON(out)
		if !found {
			return 1
		}
		return 0
	}

	if !found {
		fmt.Fprintf(os.Stderr, "icdlookup: %s: not found\n", query)
		return 1
	}
	fmt.Printf("%-10s %s\n", entry.Code, entry.Description)
	return 0
}

func runSearch(index *icd.Index, cfg *Config, query string) int {
	matches := index.Search(query)

	if cfg.Output == OutputJSON {
		printJSON(searchOutput{Query: query, Matches: matches})
		return 0
	}

	for _, m := range matches {
		fmt.Printf("%2d  %-12s %-10s %s\n", m.Distance, m.Subset, m.Entry.Code, m.Entry.Description)
	}
	return 0
}

func runSamples(index *icd.Index, cfg *Config, countArg string) int {
	if cfg.Subset == "" {
		fmt.Fprintln(os.Stderr, "icdlookup: samples requires -subset")
		return 2
	}
	subset, err := icd.ParseSubset(cfg.Subset)
	if err != nil {
		fmt.Fprintln(os.Stderr, "icdlookup:", err)
		return 2
	}
	count, err := strconv.Atoi(countArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "icdlookup: invalid count %q\n", countArg)
		return 2
	}

	entries, err := index.Samples(subset, count)
	if err != nil {
		fmt.Fprintln(os.Stderr, "icdlookup:", err)
		return 2
	}

	if cfg.Output == OutputJSON {
		printJSON(samplesOutput{Subset: subset.String(), Count: len(entries), Entries: entries})
		return 0
	}

	for _, e := range entries {
		fmt.Printf("%-10s %s\n", e.Code, e.Description)
	}
	return 0
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
