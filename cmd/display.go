package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/idolplan/idolplan/internal/account"
	"github.com/idolplan/idolplan/internal/card"
)

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

var (
	unownedColor  = colorize.New(colorize.FgHiBlack)
	ownedColor    = colorize.New(colorize.FgWhite)
	idolizedColor = colorize.New(colorize.FgCyan)
	maxedColor    = colorize.New(colorize.FgHiYellow, colorize.Bold)
)

// statusCell renders a card state in a fixed three-character cell:
// "--" unowned, "o" owned, "i0".."i5" idolized with limit break.
func statusCell(status account.CardStatus, owned bool) string {
	switch {
	case !owned:
		return unownedColor.Sprint(" --")
	case !status.Idolized:
		return ownedColor.Sprint("  o")
	case status.LimitBreak >= account.MaxLimitBreak:
		return maxedColor.Sprintf(" i%d", status.LimitBreak)
	default:
		return idolizedColor.Sprintf(" i%d", status.LimitBreak)
	}
}

// describeStatus is the long form used after a single change
func describeStatus(status account.CardStatus, owned bool) string {
	switch {
	case !owned:
		return "not owned"
	case !status.Idolized:
		return "owned"
	default:
		return fmt.Sprintf("idolized, LB%d", status.LimitBreak)
	}
}

func rarityColor(r card.Rarity) *colorize.Color {
	switch r {
	case card.UR:
		return colorize.New(colorize.FgHiMagenta)
	case card.SR:
		return colorize.New(colorize.FgHiYellow)
	default:
		return colorize.New(colorize.FgHiWhite)
	}
}

func label(s string) string {
	return colorize.CyanString(s)
}
