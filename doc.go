// Package crucible finds the cheapest way across a grid of digit costs when
// the mover cannot turn freely.
//
// 🚀 What is crucible?
//
//	A small library plus CLI built around one idea: the grid cell alone is
//	not a search state. Heading and run-length travel with the mover, and a
//	movement policy decides which turns are legal.
//		• grid/     – immutable digit cost surface, parser and loader
//		• dijkstra/ – constrained state-space Dijkstra, Basic and Windowed policies
//		• solver/   – runs both policies over many grids concurrently, with slog logging
//		• cmd/crucible – cobra CLI with viper configuration and text/JSON/YAML output
//
// Quick start:
//
//	g, err := grid.Load("input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := dijkstra.Search(g, dijkstra.Windowed{MinRun: 4, MaxRun: 10})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost)
//
// See examples/lava_route for a runnable walk-through.
package crucible
