package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idolplan/idolplan/internal/account"
	"github.com/idolplan/idolplan/internal/catalog"
	"github.com/idolplan/idolplan/internal/config"
	"github.com/idolplan/idolplan/internal/store"
	"github.com/idolplan/idolplan/internal/validator"
)

// accountCmd represents the account command group
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the accounts in your library",
	Long:  `Commands for managing, exporting and importing accounts in your account library.`,
}

var accountListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List accounts in your library",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		names, err := s.store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No accounts in your library.")
			fmt.Println("Edit your album or run 'idolplan account new' to create one.")
			return nil
		}

		for _, name := range names {
			a, err := s.store.Load(cmd.Context(), name)
			if err != nil {
				fmt.Printf("  %s (unreadable: %v)\n", name, err)
				continue
			}
			summary := fmt.Sprintf("%d cards, %d accessories", len(a.Album), len(a.Accs))
			if name == s.cfg.DefaultAccount {
				fmt.Printf("* %s (%s) [DEFAULT]\n", name, summary)
			} else {
				fmt.Printf("  %s (%s)\n", name, summary)
			}
		}
		return nil
	},
}

var accountNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create an empty account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		name := args[0]
		if _, err := s.store.LoadText(cmd.Context(), name); err == nil {
			return fmt.Errorf("account %s already exists", name)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := s.store.Save(cmd.Context(), name, account.New()); err != nil {
			return err
		}
		fmt.Printf("Created account: %s\n", name)
		return nil
	},
}

var accountSetDefaultCmd = &cobra.Command{
	Use:   "set-default [name]",
	Short: "Set the default account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		name := args[0]
		if _, err := s.store.Load(cmd.Context(), name); err != nil {
			return fmt.Errorf("not a valid account - %w", err)
		}

		if err := config.SetDefaultAccount(name); err != nil {
			return fmt.Errorf("error setting default account: %w", err)
		}
		fmt.Printf("Default account set to: %s\n", name)
		return nil
	},
}

var accountRemoveCmd = &cobra.Command{
	Use:   "rm [name]",
	Short: "Delete an account from your library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		if err := s.store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted account: %s\n", args[0])
		return nil
	},
}

var accountExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the account as text, to a file or stdout",
	Long: `Export writes the account in its exchange form, a JSON object with the
fields bond, album and accs. Save it somewhere and load it back with
'idolplan account import'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		a, err := s.store.Load(cmd.Context(), s.name)
		if errors.Is(err, store.ErrNotFound) {
			a, err = account.New(), nil
		}
		if err != nil {
			return err
		}

		data, err := account.Marshal(a)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(args[0], append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", args[0], err)
		}
		fmt.Printf("Exported %s to %s\n", s.name, args[0])
		return nil
	},
}

var accountImportCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Replace the account with exported text",
	Long: `Import reads exported account text and replaces the selected account
with it. Text that is not exactly an account (fields bond, album and accs)
is refused and the stored account is left as it was.

With --validate the account is also checked against the catalog and
refused if any card or accessory is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("error reading account text: %w", err)
		}

		a, err := account.Unmarshal(data)
		if err != nil {
			return err
		}

		s, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		if check, _ := cmd.Flags().GetBool("validate"); check {
			c, err := catalog.LoadCatalog(s.cfg.CatalogPath)
			if err != nil {
				return err
			}
			results, err := validator.NewValidator(c, a).Validate()
			if err != nil {
				return err
			}
			if printResults(args[0], results) != nil {
				return fmt.Errorf("import refused")
			}
		}

		s.account = a
		if err := s.save(cmd.Context()); err != nil {
			return err
		}
		log.Info().Str("account", s.name).Int("cards", len(a.Album)).Int("accs", len(a.Accs)).Msg("account imported")
		fmt.Printf("Imported into %s: %d cards, %d accessories\n", s.name, len(a.Album), len(a.Accs))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountNewCmd)
	accountCmd.AddCommand(accountSetDefaultCmd)
	accountCmd.AddCommand(accountRemoveCmd)
	accountCmd.AddCommand(accountExportCmd)
	accountCmd.AddCommand(accountImportCmd)

	accountImportCmd.Flags().Bool("validate", false, "Check the account against the catalog before importing")
}
