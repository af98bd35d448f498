package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idolplan/idolplan/internal/card"
	"github.com/idolplan/idolplan/internal/catalog"
)

// catalogCmd represents the catalog command group
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the card catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show how many cards each character has per rarity",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.LoadCatalog(appConfig.CatalogPath)
		if err != nil {
			return err
		}

		fmt.Printf("%-10s %4s %4s %4s\n", "", "R", "SR", "UR")
		for _, ch := range card.Roster {
			fmt.Printf("%-10s %4d %4d %4d\n", ch.Slug,
				c.Count(ch.ID, card.R), c.Count(ch.ID, card.SR), c.Count(ch.ID, card.UR))
		}
		fmt.Printf("\n%d cards\n", c.Len())
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [lemma|ordinal]",
	Short: "Show a catalog card",
	Long: `Show resolves a card by lemma or by ordinal.

Examples:
  idolplan catalog show honoka-ur1
  idolplan catalog show 204`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.LoadCatalog(appConfig.CatalogPath)
		if err != nil {
			return err
		}

		entry, err := c.GetCard(args[0])
		if err != nil {
			return err
		}
		lemma, _ := c.Lemma(entry.Ordinal)
		slug, _ := card.CharacterSlug(entry.Character)

		fmt.Println(label("Card:      ") + catalog.NiceName(lemma))
		fmt.Println(label("Lemma:     ") + lemma)
		fmt.Println(label("Ordinal:   ") + fmt.Sprint(entry.Ordinal))
		fmt.Println(label("Character: ") + slug)
		fmt.Println(label("Rarity:    ") + rarityColor(entry.Rarity).Sprint(entry.Rarity))
		fmt.Println(label("Thumbnail: ") + catalog.Thumbnail(lemma, false))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}
