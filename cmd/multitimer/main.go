// Command multitimer is an interactive multi-timer console.
//
// Every timer runs concurrently: it can be cancelled mid-flight,
// reports its remaining time on demand, and announces completion
// asynchronously without blocking the prompt. Lifecycle events can
// additionally be captured to a CBOR session journal for later
// inspection with multitimer-log.
//
// Usage:
//
//	multitimer [flags]
//
// Flags:
//
//	-config string        Configuration file path (YAML)
//	-journal string       Session journal file (overrides config)
//	-work int             Pomodoro work minutes (overrides config)
//	-break int            Pomodoro break minutes (overrides config)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-write-config string  Write the effective configuration to this path and exit
//	-version              Print version information and exit
//
// Examples:
//
//	# Start with defaults
//	multitimer
//
//	# Capture lifecycle events for later analysis
//	multitimer -journal session.tlog
//
//	# Custom pomodoro spans
//	multitimer -work 50 -break 10
//
// Interactive Commands:
//
//	add <minutes> <label>  - Start a countdown timer
//	pomodoro [label]       - Start a work timer plus a break timer
//	list                   - Show all timers and their state
//	cancel <id>            - Cancel a running timer
//	help                   - Show this help
//	exit                   - Quit (cancels all running timers)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/multitimer-project/multitimer-go/cmd/multitimer/interactive"
	"github.com/multitimer-project/multitimer-go/pkg/config"
	"github.com/multitimer-project/multitimer-go/pkg/journal"
	"github.com/multitimer-project/multitimer-go/pkg/sink"
	"github.com/multitimer-project/multitimer-go/pkg/timer"
	"github.com/multitimer-project/multitimer-go/pkg/version"
)

// appVersion is the multitimer release version.
const appVersion = "1.0.0"

// flags holds the parsed command line.
var flags struct {
	ConfigFile  string
	Journal     string
	Work        int
	Break       int
	LogLevel    string
	WriteConfig string
	Version     bool
}

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&flags.Journal, "journal", "", "Session journal file (overrides config)")
	flag.IntVar(&flags.Work, "work", 0, "Pomodoro work minutes (overrides config)")
	flag.IntVar(&flags.Break, "break", 0, "Pomodoro break minutes (overrides config)")
	flag.StringVar(&flags.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&flags.WriteConfig, "write-config", "", "Write the effective configuration to this path and exit")
	flag.BoolVar(&flags.Version, "version", false, "Print version information and exit")
}

func main() {
	flag.Parse()

	if flags.Version {
		fmt.Printf("multitimer %s (journal format %s)\n", appVersion, version.Current)
		return
	}

	setupLogging(flags.LogLevel)

	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	applyOverrides(&cfg)

	if flags.WriteConfig != "" {
		if err := config.Save(flags.WriteConfig, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote configuration to %s", flags.WriteConfig)
		return
	}

	log.Println("MultiTimer")
	log.Println("==========")
	log.Printf("Pomodoro: %dm work / %dm break", cfg.WorkMinutes, cfg.BreakMinutes)

	sessionID := uuid.NewString()
	jrn, closeJournal, err := buildJournal(cfg, sessionID)
	if err != nil {
		log.Fatalf("Failed to open journal: %v", err)
	}
	if cfg.JournalPath != "" {
		log.Printf("Journaling session %.8s to %s", sessionID, cfg.JournalPath)
	}

	out := sink.NewWriterSink(os.Stdout)
	reg := timer.NewRegistry(timer.Config{
		Sink:      out,
		Journal:   jrn,
		SessionID: sessionID,
	})

	console, err := interactive.New(reg, &consoleConfig{cfg})
	if err != nil {
		log.Fatalf("Failed to create console: %v", err)
	}

	// Route notifications and log output through readline so
	// asynchronous DONE lines do not clobber the prompt.
	out.SetOutput(console.Stdout())
	out.SetRefresh(console.Refresh)
	log.SetOutput(console.Stdout())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go console.Run(ctx, cancel)

	// Wait for shutdown signal or context cancellation
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-ctx.Done():
		// Context was cancelled by the exit command or EOF
	}

	if n := reg.Active(); n > 0 {
		log.Printf("Cancelling %d running timer(s)...", n)
	}
	reg.ShutdownAll()

	cancel()
	closeJournal()

	log.Println("Goodbye!")
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}

// applyOverrides applies command-line overrides on top of the file
// configuration.
func applyOverrides(cfg *config.Config) {
	if flags.Journal != "" {
		cfg.JournalPath = flags.Journal
	}
	if flags.Work > 0 {
		cfg.WorkMinutes = flags.Work
	}
	if flags.Break > 0 {
		cfg.BreakMinutes = flags.Break
	}
}

// buildJournal assembles the journal chain for this run: a CBOR file
// journal when a path is configured, plus an slog bridge at debug
// level. The returned close function flushes the file journal.
func buildJournal(cfg config.Config, sessionID string) (journal.Journal, func(), error) {
	var parts []journal.Journal
	closeFn := func() {}

	if cfg.JournalPath != "" {
		fj, err := journal.NewFileJournal(cfg.JournalPath, sessionID)
		if err != nil {
			return nil, nil, err
		}
		parts = append(parts, fj)
		closeFn = func() { _ = fj.Close() }
	}

	if flags.LogLevel == "debug" {
		// Let debug records pass through the log package, which is
		// redirected through readline once the console starts.
		slog.SetLogLoggerLevel(slog.LevelDebug)
		parts = append(parts, journal.NewSlogJournal(slog.Default()))
	}

	switch len(parts) {
	case 0:
		return journal.NopJournal{}, closeFn, nil
	case 1:
		return parts[0], closeFn, nil
	default:
		return journal.NewMultiJournal(parts...), closeFn, nil
	}
}

// consoleConfig adapts config.Config to the interactive console.
type consoleConfig struct {
	cfg config.Config
}

func (c *consoleConfig) WorkMinutes() int  { return c.cfg.WorkMinutes }
func (c *consoleConfig) BreakMinutes() int { return c.cfg.BreakMinutes }
func (c *consoleConfig) Prompt() string    { return c.cfg.Prompt }
