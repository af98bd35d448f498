package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idolplan/idolplan/internal/accessory"
	"github.com/idolplan/idolplan/internal/card"
)

// accsCmd represents the accessory command group
var accsCmd = &cobra.Command{
	Use:   "accs",
	Short: "Edit your accessory inventory",
}

var accsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an accessory",
	Long: `Add appends an accessory to the inventory. Kind, rarity and attribute
must be a combination the game offers (see 'idolplan accs kinds');
LB, level and skill level are clamped into range.

Example:
  idolplan accs add --kind belt --rarity ur --attribute cool --lb 5 --lv 60 --sl 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		rarityFlag, _ := cmd.Flags().GetString("rarity")
		attributeFlag, _ := cmd.Flags().GetString("attribute")
		lb, _ := cmd.Flags().GetInt("lb")
		lv, _ := cmd.Flags().GetInt("lv")
		sl, _ := cmd.Flags().GetInt("sl")

		rarity, err := card.ParseRarity(rarityFlag)
		if err != nil {
			return err
		}
		attribute, err := card.ParseAttribute(attributeFlag)
		if err != nil {
			return err
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		acc, err := s.account.InsertAccessory(accessory.Candidate{
			Kind:       strings.ToLower(kind),
			Rarity:     rarity,
			Attribute:  attribute,
			LimitBreak: lb,
			Level:      lv,
			SkillLevel: sl,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %d: %s\n", len(s.account.Accs)-1, acc)
		return s.save(cmd.Context())
	},
}

var accsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List accessories with their positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		a := s.account
		if len(a.Accs) == 0 {
			fmt.Println("No accessories in this account.")
			return nil
		}
		for i, acc := range a.Accs {
			fmt.Printf("%3d  %s\n", i, rarityColor(acc.Rarity).Sprint(acc))
		}
		return nil
	},
}

var accsRemoveCmd = &cobra.Command{
	Use:   "rm [position]",
	Short: "Remove the accessory at a position shown by 'accs ls'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position: %s", args[0])
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		if !s.account.RemoveAccessoryAt(i) {
			fmt.Printf("No accessory at position %d; nothing removed.\n", i)
			return nil
		}
		fmt.Printf("Removed accessory %d.\n", i)
		return s.save(cmd.Context())
	},
}

var accsKindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Show which rarities and attributes each accessory kind comes in",
	Run: func(cmd *cobra.Command, args []string) {
		for _, kind := range accessory.Kinds {
			rule, _ := accessory.RuleFor(kind)

			rarities := make([]string, len(rule.Rarities))
			for i, r := range rule.Rarities {
				rarities[i] = r.String()
			}
			attributes := make([]string, len(rule.Attributes))
			for i, a := range rule.Attributes {
				attributes[i] = a.String()
			}
			fmt.Printf("%-10s %-10s %s\n", kind, strings.Join(rarities, ","), strings.Join(attributes, ","))
		}
		fmt.Printf("\nMax level: R %d, SR %d, UR %d. LB %d-%d, skill level %d-%d.\n",
			accessory.MaxLevel(card.R), accessory.MaxLevel(card.SR), accessory.MaxLevel(card.UR),
			accessory.MinLimitBreak, accessory.MaxLimitBreak, accessory.MinSkillLevel, accessory.MaxSkillLevel)
	},
}

func init() {
	RootCmd.AddCommand(accsCmd)
	accsCmd.AddCommand(accsAddCmd)
	accsCmd.AddCommand(accsListCmd)
	accsCmd.AddCommand(accsRemoveCmd)
	accsCmd.AddCommand(accsKindsCmd)

	accsAddCmd.Flags().StringP("kind", "k", "", "Accessory kind, e.g. brooch or belt")
	accsAddCmd.Flags().StringP("rarity", "r", "ur", "Rarity: r, sr, ur (or 10, 20, 30)")
	accsAddCmd.Flags().String("attribute", "", "Attribute: smile, pure, cool, active, natural, elegant")
	accsAddCmd.Flags().Int("lb", 0, "Limit break (0-5)")
	accsAddCmd.Flags().Int("lv", 60, "Level (clamped to the rarity's cap)")
	accsAddCmd.Flags().Int("sl", 1, "Skill level (1-20)")
	accsAddCmd.MarkFlagRequired("kind")
	accsAddCmd.MarkFlagRequired("attribute")
}
