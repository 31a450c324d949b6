package wiring

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mapmaths/plax/pkg/sav"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds identifiers, positions and state to node labels and
	// pin numbers to edges.
	Detailed bool

	// Lock is the convention used to show the locked state.
	Lock sav.LockStyle
}

var edgeColors = map[sav.WireColor]string{
	sav.WireBlack:  "black",
	sav.WireBlue:   "royalblue",
	sav.WireRed:    "red3",
	sav.WireGreen:  "green4",
	sav.WireYellow: "gold",
}

// ToDOT converts the elements and wires of st to Graphviz DOT source.
func ToDOT(st *sav.Status, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	nodes := make(map[string]string, len(st.Elements))
	for i, e := range st.Elements {
		name := fmt.Sprintf("e%d", i)
		if id := e.ID(); id != "" {
			if _, dup := nodes[id]; !dup {
				nodes[id] = name
			}
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", name, strings.Join(nodeAttrs(e, i, opts), ", "))
	}

	missing := map[string]string{}
	endpoint := func(id string) string {
		if name, ok := nodes[id]; ok {
			return name
		}
		if name, ok := missing[id]; ok {
			return name
		}
		name := fmt.Sprintf("m%d", len(missing))
		missing[id] = name
		fmt.Fprintf(&buf, "  %s [label=%q, style=\"rounded,dashed\", fontcolor=grey40];\n", name, shortID(id))
		return name
	}

	buf.WriteString("\n")
	for _, w := range st.Wires {
		src, dst := endpoint(w.Source), endpoint(w.Target)
		fmt.Fprintf(&buf, "  %s -- %s [%s];\n", src, dst, strings.Join(edgeAttrs(w, opts.Detailed), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(e sav.Element, i int, opts Options) []string {
	label := e.ModelID()
	if label == "" {
		label = fmt.Sprintf("#%d", i)
	}
	if opts.Detailed {
		parts := []string{label, "id: " + shortID(e.ID())}
		if pos, err := e.Position(); err == nil {
			parts = append(parts, "pos: "+pos.String())
		}
		if e.Locked(opts.Lock) {
			parts = append(parts, "locked")
		}
		label = strings.Join(parts, "\n")
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if e.Broken() {
		attrs = append(attrs, "fillcolor=mistyrose", "color=red3")
	}
	return attrs
}

func edgeAttrs(w sav.Wire, detailed bool) []string {
	color, ok := edgeColors[w.ColorName]
	if !ok {
		color = "grey50"
	}
	attrs := []string{"color=" + color}
	if detailed {
		attrs = append(attrs,
			fmt.Sprintf("taillabel=%q", strconv.Itoa(w.SourcePin)),
			fmt.Sprintf("headlabel=%q", strconv.Itoa(w.TargetPin)),
			"fontsize=10")
	}
	return attrs
}

func shortID(id string) string {
	if id == "" {
		return "?"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RenderSVG renders DOT source to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the image scales from its
// viewBox instead of Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
