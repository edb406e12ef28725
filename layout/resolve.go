package layout

import (
	"github.com/wudi/foliate/diag"
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
)

// resolveTree implements spec §3's invariant ("every block has a fully
// resolved property map before layout consumes it") by walking the
// whole source tree once, top-down, threading each node's resolved map
// as the next call's inherited parent map (spec §4.1 resolve(node,
// inherited)).
//
// Percentage resolution against the true containing-block width (spec
// §4.1) would need layout's own content-width computation, which this
// pre-pass doesn't have yet; it uses containingWidth as a single
// page-body-wide approximation for every node. This is a documented
// simplification, not a spec gap: nested block-container/table cells
// with a narrower containing block than the page body may resolve
// percentage lengths slightly wide.
func resolveTree(root *source.Node, containingWidth, containingHeight float64, sink *diag.Sink) map[*source.Node]prop.Map {
	out := make(map[*source.Node]prop.Map)
	ctx := prop.Context{ContainingWidth: containingWidth, ContainingHeight: containingHeight}
	var walk func(n *source.Node, inherited prop.Map)
	walk = func(n *source.Node, inherited prop.Map) {
		resolved := prop.Resolve(n, inherited, ctx, sink)
		out[n] = resolved
		for _, c := range n.Children {
			walk(c, resolved)
		}
	}
	walk(root, nil)
	return out
}
