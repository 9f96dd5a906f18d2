// Package interactive provides the interactive command-line interface
// for the multitimer console.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/multitimer-project/multitimer-go/pkg/timer"
)

// Config provides configuration information to the interactive console.
// This interface allows the interactive layer to access settings without
// depending on the main package's config structure.
type Config interface {
	// WorkMinutes returns the pomodoro work span in minutes.
	WorkMinutes() int

	// BreakMinutes returns the pomodoro break span in minutes.
	BreakMinutes() int

	// Prompt returns the console prompt text.
	Prompt() string
}

// Console handles interactive mode for multitimer.
type Console struct {
	reg    *timer.Registry
	config Config
	rl     *readline.Instance
	out    io.Writer
}

// New creates a new interactive console handler.
func New(reg *timer.Registry, cfg Config) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		reg:    reg,
		config: cfg,
		rl:     rl,
		out:    rl.Stdout(),
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline
// input. Use this for log and notification output to avoid interfering
// with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.out
}

// Refresh redraws the prompt line. Install it as the notification
// sink's refresh hook so asynchronous DONE lines leave a usable prompt.
func (c *Console) Refresh() {
	c.rl.Refresh()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if !c.dispatch(line) {
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}
	}
}

// dispatch runs one command line. It returns false when the command
// asks to leave the loop.
func (c *Console) dispatch(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "add", "a":
		c.cmdAdd(args)

	case "pomodoro", "pomo":
		c.cmdPomodoro(args)

	case "list", "ls":
		c.cmdList()

	case "cancel", "c":
		c.cmdCancel(args)

	case "quit", "exit", "q":
		return false

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (c *Console) printHelp() {
	fmt.Fprintf(c.out, `
MultiTimer Commands:
  add <minutes> <label>  - Start a countdown timer
  pomodoro [label]       - Start a %dm work timer plus a %dm break timer
  list                   - Show all timers and their state
  cancel <id>            - Cancel a running timer
  help                   - Show this help
  exit                   - Quit (cancels all running timers)
`, c.config.WorkMinutes(), c.config.BreakMinutes())
}

// cmdAdd handles the add command.
func (c *Console) cmdAdd(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: add <minutes> <label>")
		fmt.Fprintln(c.out, "  Example: add 10 Tea")
		return
	}

	minutes, err := parseMinutes(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Invalid minutes: %v\n", err)
		return
	}

	label := strings.Join(args[1:], " ")
	if _, err := c.reg.Create(time.Duration(minutes)*time.Minute, label); err != nil {
		fmt.Fprintf(c.out, "Failed to add timer: %v\n", err)
	}
}

// cmdPomodoro handles the pomodoro command: one work timer plus one
// break timer of the configured spans.
func (c *Console) cmdPomodoro(args []string) {
	label := strings.Join(args, " ")
	if label == "" {
		label = "Pomodoro"
	}

	work := time.Duration(c.config.WorkMinutes()) * time.Minute
	brk := time.Duration(c.config.BreakMinutes()) * time.Minute

	if _, err := c.reg.Create(work, "Work: "+label); err != nil {
		fmt.Fprintf(c.out, "Failed to add work timer: %v\n", err)
		return
	}
	if _, err := c.reg.Create(brk, "Break after: "+label); err != nil {
		fmt.Fprintf(c.out, "Failed to add break timer: %v\n", err)
	}
}

// cmdList handles the list command.
func (c *Console) cmdList() {
	snaps := c.reg.List()
	if len(snaps) == 0 {
		fmt.Fprintln(c.out, "No timers.")
		return
	}

	fmt.Fprintln(c.out, "Timers:")
	for _, snap := range snaps {
		fmt.Fprintln(c.out, renderSnapshot(snap))
	}
}

// cmdCancel handles the cancel command.
func (c *Console) cmdCancel(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: cancel <id>")
		fmt.Fprintln(c.out, "  Use 'list' to see timer ids")
		return
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid timer id: %q\n", args[0])
		return
	}

	switch err := c.reg.Cancel(id); {
	case err == nil:
		// The registry announces the cancellation
	case errors.Is(err, timer.ErrNotFound):
		fmt.Fprintf(c.out, "No timer with id %d\n", id)
	case errors.Is(err, timer.ErrAlreadyTerminal):
		fmt.Fprintln(c.out, "Timer already finished or cancelled.")
	default:
		fmt.Fprintf(c.out, "Failed to cancel: %v\n", err)
	}
}

// renderSnapshot formats one list line.
func renderSnapshot(snap timer.Snapshot) string {
	switch snap.State {
	case timer.StateRunning:
		return fmt.Sprintf("  #%d %q [RUNNING, %s left]", snap.ID, snap.Label, timer.FormatDuration(snap.Remaining))
	default:
		return fmt.Sprintf("  #%d %q [%s]", snap.ID, snap.Label, snap.State)
	}
}

// parseMinutes parses the add command's minutes argument.
func parseMinutes(s string) (int, error) {
	minutes, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", minutes)
	}
	return minutes, nil
}
