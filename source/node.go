// Package source models the XSL-FO object tree that the layout core consumes.
//
// Parsing XML into this tree is an external collaborator's job (spec §1); this
// package only defines the immutable, ordered tree shape the rest of the core
// walks. A Node is a tagged variant rather than a class hierarchy (design note
// §9): shared behavior lives in free functions over Kind, not in virtual
// methods on a base type.
package source

// Kind identifies which XSL-FO formatting object a Node represents.
type Kind int

const (
	KindRoot Kind = iota
	KindLayoutMasterSet
	KindSimplePageMaster
	KindPageSequence
	KindFlow
	KindStaticContent
	KindBlock
	KindInline
	KindCharacter
	KindExternalGraphic
	KindLeader
	KindPageNumber
	KindPageNumberCitation
	KindBasicLink
	KindTable
	KindTableColumn
	KindTableHeader
	KindTableBody
	KindTableFooter
	KindTableRow
	KindTableCell
	KindListBlock
	KindListItem
	KindListItemLabel
	KindListItemBody
	KindFloat
	KindFootnote
	KindFootnoteBody
	KindMarker
	KindRetrieveMarker
	KindBlockContainer
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindLayoutMasterSet:
		return "layout-master-set"
	case KindSimplePageMaster:
		return "simple-page-master"
	case KindPageSequence:
		return "page-sequence"
	case KindFlow:
		return "flow"
	case KindStaticContent:
		return "static-content"
	case KindBlock:
		return "block"
	case KindInline:
		return "inline"
	case KindCharacter:
		return "character"
	case KindExternalGraphic:
		return "external-graphic"
	case KindLeader:
		return "leader"
	case KindPageNumber:
		return "page-number"
	case KindPageNumberCitation:
		return "page-number-citation"
	case KindBasicLink:
		return "basic-link"
	case KindTable:
		return "table"
	case KindTableColumn:
		return "table-column"
	case KindTableHeader:
		return "table-header"
	case KindTableBody:
		return "table-body"
	case KindTableFooter:
		return "table-footer"
	case KindTableRow:
		return "table-row"
	case KindTableCell:
		return "table-cell"
	case KindListBlock:
		return "list-block"
	case KindListItem:
		return "list-item"
	case KindListItemLabel:
		return "list-item-label"
	case KindListItemBody:
		return "list-item-body"
	case KindFloat:
		return "float"
	case KindFootnote:
		return "footnote"
	case KindFootnoteBody:
		return "footnote-body"
	case KindMarker:
		return "marker"
	case KindRetrieveMarker:
		return "retrieve-marker"
	case KindBlockContainer:
		return "block-container"
	default:
		return "unknown"
	}
}

// Node is one formatting object in the source tree. The tree is read-only
// once built: layout never mutates a Node, only the resolved property maps
// (see package prop) that are threaded alongside it.
type Node struct {
	Kind     Kind
	ID       string // fo:*/@id, used for link/page-number-citation/retrieve-marker lookups
	Text     string // character data for KindCharacter, KindLeader's fallback text
	Props    map[string]string // specified properties, raw source strings
	Children []*Node

	// MasterReference names the simple-page-master (or sequence) a
	// page-sequence uses; only meaningful on KindPageSequence.
	MasterReference string

	// RefID is the id a page-number-citation, basic-link (internal) or
	// retrieve-marker node refers to.
	RefID string

	// FlowName associates a flow/static-content node with a page region
	// (region-body, region-before, ...). Only meaningful on KindFlow /
	// KindStaticContent.
	FlowName string
}

// Prop returns the raw specified value of key on this node, and whether it
// was specified at all (as opposed to defaulted or inherited).
func (n *Node) Prop(key string) (string, bool) {
	if n == nil || n.Props == nil {
		return "", false
	}
	v, ok := n.Props[key]
	return v, ok
}

// Walk visits n and every descendant, depth-first, pre-order.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// FindByID returns the first node under root whose ID matches id.
func FindByID(root *Node, id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// SimplePageMaster captures the region geometry of a page-master, resolved
// out of the layout-master-set once (it is non-inherited configuration, not
// a cascading property).
type SimplePageMaster struct {
	Name           string
	PageWidth      float64 // points
	PageHeight     float64
	MarginTop      float64
	MarginBottom   float64
	MarginLeft     float64
	MarginRight    float64
	RegionBody     Region
	RegionBefore   *Region
	RegionAfter    *Region
}

// Region is a named rectangular area inside a page master (region-body,
// region-before/after for headers/footers).
type Region struct {
	Name   string
	Extent float64 // region-before/after height in points; 0 for region-body
}
