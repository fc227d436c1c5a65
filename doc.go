// Package gridpath provides shortest-path search over weighted tile grids.
//
// It exposes two main entry points:
//
//   - Search: run one of the algorithms to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive visualizers.
//
// A* and uniform-cost (breadth-first) search share one frontier-expansion
// skeleton. Greedy best-first search uses the same skeleton. The algorithms
// differ only in the priority they give each relaxed node.
package gridpath
