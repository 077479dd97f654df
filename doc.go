// Package burrow solves the amphipod sorting puzzle: typed entities start
// scattered across a hallway and a row of depth-limited rooms and must be
// moved into type-homogeneous rooms at minimum total cost.
//
// The module is organized under four subpackages:
//
//	board/    entity kinds, the Layout (hallway, rooms, entrances, step costs) and immutable States
//	moves/    legal exit and enter moves of a State, with their costs
//	search/   Dijkstra's least-cost search from a start State to the goal
//	explore/  breadth-first walks of the State graph, for reachability and invariant checks
//
// Quick example (the reference puzzle, depth 2):
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
//	l := board.Classic(2)
//	start, _ := board.NewState(l, hallway, rooms)
//	res, err := search.Search(l, start)
//	// res.Cost == 12521
//
// Parsing such diagrams is left to the caller.
package burrow
