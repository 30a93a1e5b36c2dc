// Package kinship wires the graph builder, codec, matcher, rank
// decorator and fallback formatter into the single invocation API
// described by the core library boundary: given a node/edge set and a
// (source, target) pair, infer the Chinese kinship title by which
// source would address target.
package kinship

import (
	"github.com/lesfleursdelanuitdev/kinship-infer/chain"
	"github.com/lesfleursdelanuitdev/kinship-infer/fallback"
	"github.com/lesfleursdelanuitdev/kinship-infer/graph"
	"github.com/lesfleursdelanuitdev/kinship-infer/rank"
	"github.com/lesfleursdelanuitdev/kinship-infer/rules"
	"github.com/lesfleursdelanuitdev/kinship-infer/types"
)

// MatchType is the closed outcome enum of the invocation API.
type MatchType string

const (
	MatchPrimary  MatchType = "primary"
	MatchCombined MatchType = "combined"
	MatchBranch   MatchType = "branch"
	MatchFallback MatchType = "fallback"
	MatchNone     MatchType = "none"
	MatchError    MatchType = "error"
)

// Result is the output of Infer.
type Result struct {
	Title     string
	Aliases   []string
	Chain     string
	MatchType MatchType
	PathDesc  string
}

const (
	titleNoRelation  = "没有亲戚关系"
	titleUncomputable = "无法计算称呼"
)

// Infer computes the kinship title by which source would address
// target within the graph built from nodes and edges.
func Infer(store *rules.Store, nodes []types.Person, edges []types.Edge, source, target string) Result {
	return InferGraph(store, graph.Build(nodes, edges), source, target)
}

// InferGraph is Infer against an already-built graph, for callers (the
// interactive REPL) that hold a graph across repeated queries instead
// of rebuilding it from nodes/edges on every call.
func InferGraph(store *rules.Store, g *graph.Graph, source, target string) Result {
	path, ok := g.ShortestPath(source, target)
	if !ok {
		return Result{Title: titleNoRelation, MatchType: MatchNone}
	}

	signature, ok := chain.ExtractSignature(g, path)
	if !ok {
		return Result{Title: titleUncomputable, MatchType: MatchError}
	}

	encoded := chain.Encode(g, path, signature)
	pathDesc := fallback.Describe(encoded)
	variants := chain.GenerateVariants(encoded)

	match := store.Resolve(variants)
	if match.Tier == rules.TierNone {
		return Result{
			Title:     fallback.Title(encoded),
			Chain:     encoded,
			MatchType: MatchFallback,
			PathDesc:  pathDesc,
		}
	}

	title := match.Rule.Title
	if !rank.SkipsDecoration(signature) {
		r := rank.Compute(g, target)
		title = rank.ApplyTitle(title, r)
	}

	return Result{
		Title:     title,
		Aliases:   match.Rule.Aliases,
		Chain:     match.Chain,
		MatchType: MatchType(match.Tier),
		PathDesc:  pathDesc,
	}
}
