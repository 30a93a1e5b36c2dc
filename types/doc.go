// Package types provides the core data structures shared by the
// kinship inference pipeline: the person/edge graph vocabulary the
// graph builder consumes and every other package reasons about.
//
// # Core Types
//
//   - Person: a graph node — an id, gender, and optional layout Position
//   - Edge: a labelled, directed fact between two person ids
//   - Gender: the closed M/F enum the encoder switches on
//   - Position: a node's (x, y) layout coordinate, used to resolve
//     elder/younger sibling ordering, the same-row child suffix and
//     birth-rank ordering
//
// # Usage Example
//
//	package main
//
//	import (
//		"fmt"
//		"github.com/lesfleursdelanuitdev/kinship-infer"
//		"github.com/lesfleursdelanuitdev/kinship-infer/types"
//	)
//
//	func main() {
//		nodes := []types.Person{{ID: "me", Gender: types.GenderMale}}
//		edges := []types.Edge{}
//		store, err := kinship.LoadDefaultStore("testdata/relationship_table.csv")
//		if err != nil {
//			panic(err)
//		}
//		result := kinship.Infer(store, nodes, edges, "me", "me")
//		fmt.Println(result.Title)
//	}
package types
