package layout

import (
	"github.com/wudi/foliate/prop"
	"github.com/wudi/foliate/source"
)

// buildPageMasters extracts every simple-page-master under the source
// tree's layout-master-set into the geometry struct the Page Breaker
// consumes (spec §3: "non-inherited configuration, not a cascading
// property" — masters are read directly from specified strings, not
// through prop.Resolve).
func buildPageMasters(root *source.Node) map[string]*source.SimplePageMaster {
	masters := make(map[string]*source.SimplePageMaster)
	source.Walk(root, func(n *source.Node) bool {
		if n.Kind != source.KindSimplePageMaster {
			return true
		}
		m := &source.SimplePageMaster{
			Name:         firstProp(n, "master-name"),
			PageWidth:    parsePt(n, "page-width", 612),
			PageHeight:   parsePt(n, "page-height", 792),
			MarginTop:    parsePt(n, "margin-top", 36),
			MarginBottom: parsePt(n, "margin-bottom", 36),
			MarginLeft:   parsePt(n, "margin-left", 36),
			MarginRight:  parsePt(n, "margin-right", 36),
			RegionBody:   source.Region{Name: "xsl-region-body"},
		}
		if extent, ok := n.Prop("region-before-extent"); ok {
			if pt, ok := prop.ParseLength(extent, 10, 0); ok {
				m.RegionBefore = &source.Region{Name: "xsl-region-before", Extent: pt}
			}
		}
		if extent, ok := n.Prop("region-after-extent"); ok {
			if pt, ok := prop.ParseLength(extent, 10, 0); ok {
				m.RegionAfter = &source.Region{Name: "xsl-region-after", Extent: pt}
			}
		}
		masters[m.Name] = m
		return true
	})
	return masters
}

func firstProp(n *source.Node, key string) string {
	v, _ := n.Prop(key)
	return v
}

func parsePt(n *source.Node, key string, def float64) float64 {
	raw, ok := n.Prop(key)
	if !ok {
		return def
	}
	pt, ok := prop.ParseLength(raw, 10, 0)
	if !ok {
		return def
	}
	return pt
}

// bodyWidth returns a master's region-body content width (page width
// minus margins), used as the containing-block width approximation for
// property resolution (spec §4.1 percentage resolution).
func bodyWidth(m *source.SimplePageMaster) float64 {
	return m.PageWidth - m.MarginLeft - m.MarginRight
}

func bodyHeight(m *source.SimplePageMaster) float64 {
	h := m.PageHeight - m.MarginTop - m.MarginBottom
	if m.RegionBefore != nil {
		h -= m.RegionBefore.Extent
	}
	if m.RegionAfter != nil {
		h -= m.RegionAfter.Extent
	}
	return h
}
