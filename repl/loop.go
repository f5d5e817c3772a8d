// Package repl implements the line-oriented chat loop in front of the agent.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"bookrec/llm/agent"
)

const (
	// ExitCommand ends the conversation (case-insensitive, surrounding space ignored).
	ExitCommand = "exit"

	Prompt = "> "

	bannerText   = "🕮  Hello, I'm a Book Recommendation Agent 🕮"
	exampleText  = `Example Ask: "Recommend a fantasy book"`
	exitHintText = `Type "exit" if you wish to end this conversation.`
	farewellText = "🕮  Happy Reading! 🕮"
)

// TurnRunner handles one user line. *agent.Runtime implements it.
type TurnRunner interface {
	Run(ctx context.Context, input string) (*agent.Turn, error)
}

// Config holds the loop's collaborators.
type Config struct {
	In     io.Reader
	Out    io.Writer
	Runner TurnRunner
	Theme  *Theme
	// Logger receives failed turns; defaults to log.Default().
	Logger *log.Logger
}

// Loop reads one line at a time and prints the agent's answer before
// prompting again. It never processes two lines concurrently.
type Loop struct {
	scanner *bufio.Scanner
	out     io.Writer
	runner  TurnRunner
	theme   *Theme
	logger  *log.Logger
}

// New creates a loop from config.
func New(config Config) *Loop {
	theme := config.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{
		scanner: bufio.NewScanner(config.In),
		out:     config.Out,
		runner:  config.Runner,
		theme:   theme,
		logger:  logger,
	}
}

// Run prints the banner and serves lines until "exit" or end of input.
// A failed turn is logged and the loop continues; only read errors are returned.
func (l *Loop) Run(ctx context.Context) error {
	l.printBanner()

	for {
		fmt.Fprint(l.out, Prompt)
		if !l.scanner.Scan() {
			fmt.Fprintln(l.out)
			return l.scanner.Err()
		}

		input := l.scanner.Text()
		if IsExit(input) {
			fmt.Fprintln(l.out, l.theme.Farewell.Render(farewellText))
			return nil
		}

		turn, err := l.runner.Run(ctx, input)
		if err != nil {
			l.logger.Printf("request failed: %v", err)
			continue
		}
		l.printTurn(turn)
	}
}

// IsExit reports whether input is the exit command.
func IsExit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), ExitCommand)
}

func (l *Loop) printBanner() {
	fmt.Fprintln(l.out, l.theme.Banner.Render(bannerText))
	fmt.Fprintln(l.out, l.theme.Hint.Render(exampleText))
	fmt.Fprintln(l.out, l.theme.Hint.Render(exitHintText))
	fmt.Fprintln(l.out)
}

// printTurn prints every tool output in order, or the free-text reply when
// no tool ran.
func (l *Loop) printTurn(turn *agent.Turn) {
	if turn == nil {
		return
	}
	if len(turn.ToolOutputs) > 0 {
		for _, out := range turn.ToolOutputs {
			fmt.Fprintln(l.out, out)
		}
		return
	}
	fmt.Fprintln(l.out, turn.Reply)
}
