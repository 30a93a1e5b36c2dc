package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/lesfleursdelanuitdev/kinship-infer/chain"
	"github.com/lesfleursdelanuitdev/kinship-infer/cmd/kinship/internal"
	"github.com/lesfleursdelanuitdev/kinship-infer/graph"
	kinship "github.com/lesfleursdelanuitdev/kinship-infer"
	"github.com/lesfleursdelanuitdev/kinship-infer/rank"
	"github.com/lesfleursdelanuitdev/kinship-infer/rules"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive mode",
	Long:  "Load a node/edge graph once, then issue repeated infer/chain/siblings queries against it.",
	RunE:  runInteractive,
}

// replState holds the single graph and rule store an interactive
// session queries repeatedly.
type replState struct {
	g     *graph.Graph
	store *rules.Store
}

var state *replState

func init() {
	interactiveCmd.Flags().String("nodes", "", "Path to a JSON file holding the person node array")
	interactiveCmd.Flags().String("edges", "", "Path to a JSON file holding the labelled edge array")
	interactiveCmd.Flags().String("csv", "", "Relationship-table CSV path")
	interactiveCmd.MarkFlagRequired("nodes")
	interactiveCmd.MarkFlagRequired("edges")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	nodesPath, _ := cmd.Flags().GetString("nodes")
	edgesPath, _ := cmd.Flags().GetString("edges")
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

	state = &replState{g: graph.Build(nodes, edges), store: store}

	internal.PrintSuccess("✓ Interactive mode ready\n")
	internal.PrintInfo("  Type 'help' for available commands\n")
	internal.PrintInfo("  Type 'exit' to exit\n\n")

	startREPL()
	return nil
}

func startREPL() {
	fileInfo, err := os.Stdin.Stat()
	if err != nil || (fileInfo.Mode()&os.ModeCharDevice) == 0 {
		startSimpleREPL()
		return
	}

	p := prompt.New(
		executor,
		completer,
		prompt.OptionPrefix("kinship> "),
		prompt.OptionTitle("Kinship Interactive Mode"),
		prompt.OptionPrefixTextColor(prompt.Cyan),
		prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
		prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
	)
	p.Run()
}

func startSimpleREPL() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("kinship> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		executor(line)
	}
}

func executor(in string) {
	in = strings.TrimSpace(in)
	if in == "" {
		return
	}

	parts := strings.Fields(in)
	command, args := parts[0], parts[1:]

	switch command {
	case "exit", "quit", "q":
		internal.PrintInfo("Goodbye!\n")
		os.Exit(0)

	case "help", "h":
		printHelp()

	case "infer":
		if len(args) < 2 {
			internal.PrintError("Usage: infer <source> <target>\n")
			return
		}
		showInfer(args[0], args[1])

	case "chain":
		if len(args) < 2 {
			internal.PrintError("Usage: chain <source> <target>\n")
			return
		}
		showChain(args[0], args[1])

	case "siblings":
		if len(args) < 1 {
			internal.PrintError("Usage: siblings <id>\n")
			return
		}
		showSiblings(args[0])

	default:
		internal.PrintError("Unknown command: %s\n", command)
		internal.PrintInfo("Type 'help' for available commands\n")
	}
}

func completer(d prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "help", Description: "Show help"},
		{Text: "exit", Description: "Exit interactive mode"},
		{Text: "infer", Description: "Infer a kinship title"},
		{Text: "chain", Description: "Show the raw kinship chain"},
		{Text: "siblings", Description: "Show a person's same-gender sibling cohort"},
	}
	return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
}

func printHelp() {
	internal.PrintInfo("\nAvailable Commands:\n\n")
	internal.PrintInfo("  help, h                 Show this help\n")
	internal.PrintInfo("  exit, quit, q           Exit interactive mode\n")
	internal.PrintInfo("  infer <src> <dst>       Infer the kinship title from src to dst\n")
	internal.PrintInfo("  chain <src> <dst>       Show the raw kinship chain from src to dst\n")
	internal.PrintInfo("  siblings <id>           Show id's same-gender sibling cohort\n\n")
}

func showInfer(source, target string) {
	result := kinship.InferGraph(state.store, state.g, source, target)
	internal.PrintSuccess("%s -> %s: %s\n", source, target, result.Title)
	internal.PrintInfo("  chain:      %s\n", result.Chain)
	internal.PrintInfo("  match_type: %s\n", result.MatchType)
	internal.PrintInfo("  path_desc:  %s\n", result.PathDesc)
}

func showChain(source, target string) {
	path, ok := state.g.ShortestPath(source, target)
	if !ok {
		internal.PrintWarning("No path between %s and %s\n", source, target)
		return
	}
	signature, ok := chain.ExtractSignature(state.g, path)
	if !ok {
		internal.PrintError("Path contains an unlabelled hop\n")
		return
	}
	internal.PrintInfo("chain: %s\n", chain.Encode(state.g, path, signature))
}

func showSiblings(id string) {
	r := rank.Compute(state.g, id)
	if !r.Defined() {
		internal.PrintInfo("No sibling cohort found for %s\n", id)
		return
	}
	internal.PrintInfo("%s is %d of %d\n", id, r.Position, r.Total)
}

// GetInteractiveCommand returns the interactive command.
func GetInteractiveCommand() *cobra.Command {
	return interactiveCmd
}
