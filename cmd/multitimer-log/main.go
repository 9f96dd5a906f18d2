// Command multitimer-log is a tool for viewing and analyzing timer
// journal files.
//
// Journal files are created by running multitimer with the -journal
// flag (or a journal_path config entry).
//
// Usage:
//
//	multitimer-log <command> [flags] <file.tlog>
//
// Commands:
//
//	view     View journal file in human-readable format
//	export   Export journal file to JSON or CSV format
//	filter   Filter journal file and write to new file
//	stats    Show statistics about the journal file
//
// Examples:
//
//	# View all events
//	multitimer-log view session.tlog
//
//	# View only cancellations
//	multitimer-log view --kind cancelled session.tlog
//
//	# Follow a single timer across its lifecycle
//	multitimer-log view --timer-id 3 session.tlog
//
//	# Export to JSONL
//	multitimer-log export --format jsonl session.tlog
//
//	# Filter by session and save to new file
//	multitimer-log filter --session abc12345 -o filtered.tlog session.tlog
//
//	# Show statistics
//	multitimer-log stats session.tlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/multitimer-project/multitimer-go/cmd/multitimer-log/commands"
)

const usage = `multitimer-log - Timer Journal Analyzer

Usage:
  multitimer-log <command> [flags] <file.tlog>

Commands:
  view     View journal file in human-readable format
  export   Export journal file to JSON or CSV format
  filter   Filter journal file and write to new file
  stats    Show statistics about the journal file

Use "multitimer-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `multitimer-log view - View journal file in human-readable format

Usage:
  multitimer-log view [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	kind := fs.String("kind", "", "Filter by event kind (session, added, cancelled, finished, shutdown)")
	timerID := fs.Uint64("timer-id", 0, "Filter by timer id")
	session := fs.String("session", "", "Filter by session ID")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: journal file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	// Build filter
	filter := commands.ViewFilter{
		TimerID:   *timerID,
		SessionID: *session,
	}

	if *kind != "" {
		k, err := commands.ParseKindFlag(*kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Kind = &k
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `multitimer-log export - Export journal file to JSON or CSV format

Usage:
  multitimer-log export [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: journal file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `multitimer-log filter - Filter journal file and write to new file

Usage:
  multitimer-log filter [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	session := fs.String("session", "", "Filter by session ID")
	kind := fs.String("kind", "", "Filter by event kind (session, added, cancelled, finished, shutdown)")
	timerID := fs.Uint64("timer-id", 0, "Filter by timer id")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: journal file path required")
		fs.Usage()
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	opts := commands.FilterOptions{
		Output:    *output,
		SessionID: *session,
		Kind:      *kind,
		TimerID:   *timerID,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
	}

	if err := commands.RunFilter(path, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `multitimer-log stats - Show statistics about the journal file

Usage:
  multitimer-log stats <file.tlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: journal file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
