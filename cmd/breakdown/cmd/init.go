package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/breakdown/internal/app"
	"github.com/wexinc/breakdown/internal/tui"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize breakdown in the current project",
	Long: `Initialize breakdown in the current project.

This command creates the .agent/breakdown workspace:
  - config/app.yml        Default configuration
  - prompts/              Starter prompt templates
  - schema/               Starter schema files
  - project/ issue/ task/ Layer working directories

Without flags an interactive wizard runs. Use --non-interactive for
scripted setups and --force to overwrite existing files.

Examples:
  breakdown init                    # Interactive wizard
  breakdown init --non-interactive  # Create with defaults, keep existing files
  breakdown init --force            # Overwrite config and templates`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite existing configuration and templates")
	initCmd.Flags().Bool("non-interactive", false, "Skip the wizard and use defaults")
}

// runInit is the main entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")

	if !nonInteractive {
		res, err := tui.RunWizard(".")
		if err != nil {
			return err
		}
		if res == nil {
			cmd.Println("Init cancelled.")
			return nil
		}
		printInitResult(cmd, res)
		return nil
	}

	s := app.NewSetup(".")
	s.Force = force
	s.BuildVersion = Version
	s.OnProgress = func(status string) { cmd.Println(status) }

	res, err := s.Run()
	if err != nil {
		return err
	}
	printInitResult(cmd, res)
	return nil
}

func printInitResult(cmd *cobra.Command, res *app.SetupResult) {
	cmd.Println("")
	cmd.Println("Breakdown initialized successfully!")
	cmd.Println("Workspace: " + res.WorkingDir)
	cmd.Println("Edit " + res.ConfigPath + " to configure your settings.")
	cmd.Println("Run 'breakdown to task --from <file>' to generate your first prompt.")
}
