package commands

import (
	"encoding/json"
	"fmt"
	"os"

	kinship "github.com/lesfleursdelanuitdev/kinship-infer"
	"github.com/lesfleursdelanuitdev/kinship-infer/cmd/kinship/internal"
	"github.com/lesfleursdelanuitdev/kinship-infer/rules"
	"github.com/lesfleursdelanuitdev/kinship-infer/types"
	"github.com/spf13/cobra"
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Infer a kinship title between two people",
	Long:  "Load a node/edge graph from JSON files and compute the title source would use to address target.",
	RunE:  runInfer,
}

func init() {
	inferCmd.Flags().String("nodes", "", "Path to a JSON file holding the person node array")
	inferCmd.Flags().String("edges", "", "Path to a JSON file holding the labelled edge array")
	inferCmd.Flags().String("source", "", "Source person id")
	inferCmd.Flags().String("target", "", "Target person id")
	inferCmd.Flags().String("csv", "", "Relationship-table CSV path (overrides config)")
	inferCmd.MarkFlagRequired("nodes")
	inferCmd.MarkFlagRequired("edges")
	inferCmd.MarkFlagRequired("source")
	inferCmd.MarkFlagRequired("target")
}

// graphPayload is the combined {nodes, edges} request-body shape.
// runInfer does not read it: --nodes and --edges each name a file
// holding a bare JSON array.
type graphPayload struct {
	Nodes []types.Person `json:"nodes"`
	Edges []types.Edge   `json:"edges"`
}

func runInfer(cmd *cobra.Command, args []string) error {
	nodesPath, _ := cmd.Flags().GetString("nodes")
	edgesPath, _ := cmd.Flags().GetString("edges")
	source, _ := cmd.Flags().GetString("source")
	target, _ := cmd.Flags().GetString("target")
	csvPath, _ := cmd.Flags().GetString("csv")

	nodes, err := loadNodes(nodesPath)
	if err != nil {
		internal.PrintError("✗ Failed to load nodes: %v\n", err)
		return err
	}
	edges, err := loadEdges(edgesPath)
	if err != nil {
		internal.PrintError("✗ Failed to load edges: %v\n", err)
		return err
	}

	store, err := resolveStore(csvPath)
	if err != nil {
		internal.PrintError("✗ Failed to load rule table: %v\n", err)
		return err
	}

	result := kinship.Infer(store, nodes, edges, source, target)

	internal.PrintSuccess("✓ %s -> %s: %s\n", source, target, result.Title)
	internal.PrintInfo("  chain:      %s\n", result.Chain)
	internal.PrintInfo("  match_type: %s\n", result.MatchType)
	internal.PrintInfo("  path_desc:  %s\n", result.PathDesc)
	if len(result.Aliases) > 0 {
		internal.PrintInfo("  aliases:    %v\n", result.Aliases)
	}
	return nil
}

func loadNodes(path string) ([]types.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var nodes []types.Person
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("parsing nodes JSON: %w", err)
	}
	return nodes, nil
}

func loadEdges(path string) ([]types.Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var edges []types.Edge
	if err := json.Unmarshal(data, &edges); err != nil {
		return nil, fmt.Errorf("parsing edges JSON: %w", err)
	}
	return edges, nil
}

func resolveStore(csvPath string) (*rules.Store, error) {
	if csvPath == "" {
		config, err := internal.LoadConfig("")
		if err != nil {
			return nil, err
		}
		csvPath = config.Rules.CSVPath
	}
	return kinship.LoadDefaultStore(csvPath)
}

// GetInferCommand returns the infer command.
func GetInferCommand() *cobra.Command {
	return inferCmd
}
