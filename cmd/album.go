package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idolplan/idolplan/internal/card"
	"github.com/idolplan/idolplan/internal/catalog"
)

// albumCmd represents the album command group
var albumCmd = &cobra.Command{
	Use:   "album",
	Short: "Edit which cards you own and how far they are upgraded",
}

var albumAdvanceCmd = &cobra.Command{
	Use:   "advance [lemma|ordinal]...",
	Short: "Move cards one step along owned → idolized → LB1..LB5 → not owned",
	Long: `Advance moves each named card one step around its upgrade cycle:

  not owned → owned → idolized → LB1 → ... → LB5 → not owned

With --fast a card you don't own is added already idolized, and an
idolized card jumps straight to LB5.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fast, _ := cmd.Flags().GetBool("fast")

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		// Resolve everything first so a typo leaves the account untouched
		ordinals := make([]uint32, len(args))
		lemmas := make([]string, len(args))
		for i, id := range args {
			ordinals[i], lemmas[i], err = s.resolveCard(id)
			if err != nil {
				return err
			}
		}

		for i, ordinal := range ordinals {
			s.account.Advance(ordinal, fast)
			status, owned := s.account.Status(ordinal)
			fmt.Printf("%s: %s\n", catalog.NiceName(lemmas[i]), describeStatus(status, owned))
		}
		return s.save(cmd.Context())
	},
}

var albumListCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show the album as a grid of characters by rarity",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		printAlbum(s)
		return nil
	},
}

const (
	rowLabelWidth = 13
	cellWidth     = 3
)

// printAlbum prints one row per character and rarity, wrapping columns to
// the terminal width.
func printAlbum(s *session) {
	columns := s.catalog.MaxCount()
	perLine := (terminalWidth() - rowLabelWidth) / cellWidth
	if perLine < 1 {
		perLine = 1
	}

	for start := 0; start < columns; start += perLine {
		end := min(columns, start+perLine)

		header := strings.Repeat(" ", rowLabelWidth)
		for n := start + 1; n <= end; n++ {
			header += fmt.Sprintf("%*d", cellWidth, n)
		}
		fmt.Println(label(header))

		for _, ch := range card.Roster {
			for _, r := range card.Rarities {
				count := s.catalog.Count(ch.ID, r)
				if count <= start {
					continue
				}

				var row strings.Builder
				row.WriteString(fmt.Sprintf("%-*s", rowLabelWidth, ch.Slug+" "+r.Slug()))
				for n := start + 1; n <= min(count, end); n++ {
					ordinal, _ := s.catalog.Ordinal(catalog.LemmaFor(ch.ID, r, n))
					status, owned := s.account.Status(ordinal)
					row.WriteString(statusCell(status, owned))
				}
				fmt.Println(row.String())
			}
		}
		fmt.Println()
	}

	fmt.Printf("%d of %d cards owned\n", len(s.account.Album), s.catalog.Len())
}

func init() {
	RootCmd.AddCommand(albumCmd)
	albumCmd.AddCommand(albumAdvanceCmd)
	albumCmd.AddCommand(albumListCmd)

	albumAdvanceCmd.Flags().BoolP("fast", "f", false, "Skip to idolized, or to LB5 if already idolized")
}
