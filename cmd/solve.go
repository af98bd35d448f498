package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/idolplan/idolplan/internal/catalog"
	"github.com/idolplan/idolplan/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Ask the team optimizer for a team for a song",
	Long: `Solve hands the account, the catalog and a song chart to the external
optimizer configured as solver_command and prints the proposed team.

The chart is read from mapdb_dir/<song id>.json.

Example:
  idolplan solve --song 10015301 --steps 5000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		songID, _ := cmd.Flags().GetUint32("song")
		steps, _ := cmd.Flags().GetUint32("steps")
		if steps == 0 {
			steps = appConfig.SolverSteps
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		songPath := s.cfg.SongPath(songID)
		song, err := os.ReadFile(songPath)
		if err != nil {
			return fmt.Errorf("couldn't load song %d: %w", songID, err)
		}

		req, err := solver.NewRequest(steps, s.catalog, s.account, songID, song)
		if err != nil {
			return err
		}

		res, err := solver.Run(cmd.Context(), &solver.CommandSolver{
			Command: s.cfg.SolverCommand,
			Args:    s.cfg.SolverArgs,
		}, req)
		if err != nil {
			return err
		}

		printTeam(res, solver.Team(res, s.catalog, s.account))
		return nil
	},
}

func printTeam(res solver.Result, slots []solver.Slot) {
	fmt.Println(label("Estimated voltage: ") + colorize.New(colorize.Bold).Sprintf("%.1f", res.Voltage))
	fmt.Println()

	for n, slot := range slots {
		if n > 0 && n%3 == 0 {
			fmt.Println()
		}

		name := catalog.NiceName(slot.Lemma)
		if name == "" {
			name = "(not in catalog)"
		}

		sp := ""
		switch slot.SP {
		case solver.SPCenter:
			sp = colorize.HiYellowString(" [SP center]")
		case solver.SPBackup:
			sp = colorize.YellowString(" [SP backup]")
		}

		acc := "-"
		if slot.Accessory != nil {
			acc = rarityColor(slot.Accessory.Rarity).Sprint(slot.Accessory)
		}

		fmt.Printf("%6d  %-18s%s\n        %s\n", slot.Ordinal, name, sp, acc)
	}
}

func init() {
	RootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Uint32P("song", "s", 0, "Song ID to build a team for")
	solveCmd.Flags().Uint32("steps", 0, "Optimizer step count (default from config)")
	solveCmd.MarkFlagRequired("song")
}
