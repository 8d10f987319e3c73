// Package console is the terminal side of the game: it reads player names,
// stakes and yes/no answers line by line, and prints round events.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// ErrEndOfInput is returned when the input stream closes mid-prompt. There is
// no way to finish a round without input, so callers treat it as fatal.
var ErrEndOfInput = errors.New("end of input")

// Prompter asks questions on w and reads answers from r, re-prompting until
// an answer parses. Input is read by a single background goroutine so a
// prompt can be abandoned when its context is cancelled.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger

	start   sync.Once
	lines   chan string
	readErr error // set before lines is closed
}

// NewPrompter creates a prompter. A nil logger discards.
func NewPrompter(r io.Reader, w io.Writer, logger *log.Logger) *Prompter {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Prompter{
		in:     bufio.NewReader(r),
		out:    w,
		logger: logger,
		lines:  make(chan string),
	}
}

// readLoop feeds lines to ReadLine until the input fails or ends.
func (p *Prompter) readLoop() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		if line != "" || err == nil {
			p.lines <- line
		}
		if err != nil {
			p.readErr = err
			return
		}
	}
}

// ReadLine prints prompt and returns the next line without its line ending.
// It returns ctx.Err() as soon as ctx is cancelled, even mid-read.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	p.start.Do(func() { go p.readLoop() })

	var line string
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			if errors.Is(p.readErr, io.EOF) {
				return "", ErrEndOfInput
			}
			return "", fmt.Errorf("read input: %w", p.readErr)
		}
		line = l
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// PromptYesNo asks until the answer is recognised by ParseYesNo.
func (p *Prompter) PromptYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := p.ReadLine(ctx, prompt)
		if err != nil {
			return false, err
		}
		if answer, ok := ParseYesNo(line); ok {
			return answer, nil
		}
		p.logger.Debug("Unrecognised yes/no answer", "input", line)
		fmt.Fprintln(p.out, "Sorry, I couldn't understand that. Please answer \"yes\" or \"no\".")
	}
}

// PromptStake asks until the answer is a non-negative decimal amount.
func (p *Prompter) PromptStake(ctx context.Context) (float64, error) {
	for {
		line, err := p.ReadLine(ctx, "How much money do you want to bet?\nI want to bet: ")
		if err != nil {
			return 0, err
		}
		stake, err := ParseStake(line)
		if err == nil {
			return stake, nil
		}
		p.logger.Debug("Rejected stake", "input", line, "error", err)
		fmt.Fprintln(p.out, "Sorry, I couldn't understand that. Please enter a decimal amount like \"1.53\".")
	}
}

// PromptPlayer asks for a name and a stake.
func (p *Prompter) PromptPlayer(ctx context.Context) (game.PlayerEntry, error) {
	name, err := p.ReadLine(ctx, "How do you want to be called?\nPlease call me: ")
	if err != nil {
		return game.PlayerEntry{}, err
	}
	stake, err := p.PromptStake(ctx)
	if err != nil {
		return game.PlayerEntry{}, err
	}
	p.logger.Info("Player joined", "name", name, "stake", stake)
	return game.PlayerEntry{Name: name, Stake: stake}, nil
}

// CollectPlayers prompts for the first player and keeps adding players while
// the table answers yes to "Is there another user?".
func (p *Prompter) CollectPlayers(ctx context.Context) ([]game.PlayerEntry, error) {
	first, err := p.PromptPlayer(ctx)
	if err != nil {
		return nil, err
	}
	entries := []game.PlayerEntry{first}

	for {
		more, err := p.PromptYesNo(ctx, "Is there another user?\n")
		if err != nil {
			return nil, err
		}
		if !more {
			return entries, nil
		}
		entry, err := p.PromptPlayer(ctx)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// ShouldDraw implements game.Decider by asking the player at the terminal.
func (p *Prompter) ShouldDraw(ctx context.Context, view game.PlayerView) (bool, error) {
	return p.PromptYesNo(ctx, fmt.Sprintf("%s do you want to draw again? | ", view.Name))
}

// ParseYesNo accepts yes/no, y/n and true/false in any case.
func ParseYesNo(s string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return true, true
	case "no", "n", "false":
		return false, true
	default:
		return false, false
	}
}

// ParseStake parses a non-negative, finite decimal amount.
func ParseStake(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	return v, nil
}
