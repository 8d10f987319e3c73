package console

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Printer writes round events as status lines. It implements game.Reporter.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
	r   *lipgloss.Renderer

	nameStyle   lipgloss.Style
	scoreStyle  lipgloss.Style
	winStyle    lipgloss.Style
	loseStyle   lipgloss.Style
	dealerStyle lipgloss.Style
	titleStyle  lipgloss.Style
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithColorProfile forces a colour profile instead of detecting one from the
// output. termenv.Ascii disables styling entirely.
func WithColorProfile(p termenv.Profile) PrinterOption {
	return func(pr *Printer) {
		pr.r.SetColorProfile(p)
	}
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		out: w,
		r:   lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.nameStyle = p.r.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	p.scoreStyle = p.r.NewStyle().Bold(true)
	p.winStyle = p.r.NewStyle().Foreground(lipgloss.Color("10"))
	p.loseStyle = p.r.NewStyle().Foreground(lipgloss.Color("9"))
	p.dealerStyle = p.r.NewStyle().Foreground(lipgloss.Color("11"))
	p.titleStyle = p.r.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#2E7D32")).
		Padding(0, 1).
		Bold(true)
	return p
}

// Title prints the banner shown before a round.
func (p *Printer) Title(text string) {
	p.println(p.titleStyle.Render(text))
}

// Report implements game.Reporter.
func (p *Printer) Report(e game.Event) {
	if line := p.Format(e); line != "" {
		p.println(line)
	}
}

// Format renders a single event as a status line.
func (p *Printer) Format(e game.Event) string {
	switch ev := e.(type) {
	case game.StartingHandEvent:
		line := fmt.Sprintf("%s you start off with %s %s.", p.name(ev.Player), p.score(ev.Score), deck.FormatValues(ev.Cards))
		if ev.Blackjack {
			line += " " + p.winStyle.Render("Blackjack!")
		}
		return line
	case game.DrawEvent:
		return fmt.Sprintf("%s drew %s and now has %s points.", p.name(ev.Player), ev.Card, p.score(ev.Score))
	case game.StandEvent:
		return fmt.Sprintf("%s stands on %s.", p.name(ev.Player), p.score(ev.Score))
	case game.BustEvent:
		return p.loseStyle.Render(fmt.Sprintf("Unfortunately %s drew %s, busted with %d points and lost %s!",
			ev.Player, ev.Card, ev.Score, FormatMoney(ev.Lost)))
	case game.DealerStandEvent:
		return p.dealerStyle.Render(fmt.Sprintf("The dealer stands on %d %s.", ev.Score, deck.FormatValues(ev.Cards)))
	case game.DealerBustEvent:
		return p.dealerStyle.Render(fmt.Sprintf("The dealer busted with %d %s!", ev.Score, deck.FormatValues(ev.Cards)))
	case game.PayoutEvent:
		switch ev.Outcome {
		case game.OutcomeDealerBust:
			return p.winStyle.Render(fmt.Sprintf("Congratulations %s, the dealer busted and you won %s!",
				ev.Player, FormatMoney(ev.Money-ev.Amount)))
		case game.OutcomeWin:
			return p.winStyle.Render(fmt.Sprintf("Congratulations %s, you beat the dealer %d to %d and won %s!",
				ev.Player, ev.Score, ev.DealerScore, FormatMoney(ev.Money-ev.Amount)))
		default:
			return p.loseStyle.Render(fmt.Sprintf("Unfortunately the dealer has %d points against your %d, %s. You lost %s.",
				ev.DealerScore, ev.Score, ev.Player, FormatMoney(ev.Amount)))
		}
	}
	return ""
}

// Summary prints a table with every player's final state.
func (p *Printer) Summary(result *game.RoundResult) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Player", "Cards", "Score", "Outcome", "Stake", "Money", "Net")
	for _, pr := range result.Players {
		t.Row(
			pr.Name,
			deck.FormatValues(pr.Cards),
			strconv.Itoa(pr.Score),
			pr.Outcome.String(),
			FormatMoney(pr.Stake),
			FormatMoney(pr.Money),
			FormatMoney(pr.Net()),
		)
	}
	t.Row("Dealer", deck.FormatValues(result.DealerCards), strconv.Itoa(result.DealerScore), result.DealerMode.String(), "", "", "")

	p.println(t.Render())
}

// FormatMoney renders an amount with as many decimals as it needs.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (p *Printer) name(s string) string {
	return p.nameStyle.Render(s)
}

func (p *Printer) score(n int) string {
	return p.scoreStyle.Render(strconv.Itoa(n))
}

func (p *Printer) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, s)
}
