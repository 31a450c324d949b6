// Package wiring draws the circuit in a save as a Graphviz diagram.
//
// Elements become boxes labelled with their model ID; wires become
// undirected edges coloured like the wire in the game. Wires whose endpoint
// is not in the save are drawn to a dashed placeholder node.
//
//	st, _ := doc.Status()
//	dot := wiring.ToDOT(st, wiring.Options{Detailed: true})
//	svg, err := wiring.RenderSVG(ctx, dot)
package wiring
