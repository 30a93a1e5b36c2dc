package commands

import (
	"os"

	"github.com/lesfleursdelanuitdev/kinship-infer/cmd/kinship/internal"
	"github.com/lesfleursdelanuitdev/kinship-infer/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate relationship-table CSV files",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a relationship table and report bucket counts",
	RunE:  runRulesValidate,
}

var rulesLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a relationship table and print a summary",
	RunE:  runRulesValidate, // load and validate share the same report
}

func init() {
	rulesValidateCmd.Flags().String("csv", "", "Relationship-table CSV path")
	rulesValidateCmd.MarkFlagRequired("csv")
	rulesLoadCmd.Flags().String("csv", "", "Relationship-table CSV path")
	rulesLoadCmd.MarkFlagRequired("csv")

	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesLoadCmd)
}

func runRulesValidate(cmd *cobra.Command, args []string) error {
	csvPath, _ := cmd.Flags().GetString("csv")

	info, err := os.Stat(csvPath)
	if err != nil {
		internal.PrintError("✗ Cannot read %s: %v\n", csvPath, err)
		return err
	}

	bar := internal.NewProgressBar(int(info.Size()), "loading rule table")
	f, err := os.Open(csvPath)
	if err != nil {
		internal.PrintError("✗ %v\n", err)
		return err
	}
	defer f.Close()
	bar.Add(int(info.Size()))

	store, err := rules.Load(f)
	if err != nil {
		internal.PrintError("✗ Failed to load %s: %v\n", csvPath, err)
		return err
	}

	dialectCount := 0
	for _, bucket := range store.Dialect {
		dialectCount += len(bucket)
	}

	internal.PrintSuccess("✓ Loaded %s\n", csvPath)
	internal.PrintInfo("  primary:  %d\n", len(store.Primary))
	internal.PrintInfo("  combined: %d\n", len(store.Combined))
	internal.PrintInfo("  branch:   %d\n", len(store.Branch))
	internal.PrintInfo("  input:    %d\n", len(store.Input))
	internal.PrintInfo("  prefix:   %d\n", len(store.Prefix))
	internal.PrintInfo("  pair:     %d\n", len(store.Pair))
	internal.PrintInfo("  dialect:  %d\n", dialectCount)
	return nil
}

// GetRulesCommand returns the rules command tree.
func GetRulesCommand() *cobra.Command {
	return rulesCmd
}
