package page

import "github.com/wudi/foliate/area"

// Finalize implements spec §4.5's forward-reference pass: every inline
// area tagged with a PageNumberRefID is patched to the real page number
// of the area its RefID resolves to (spec §3.4 "Identity and
// references"). The containing line's alignment is not re-broken, only
// re-rendered, per spec §4.5 ("re-measured and re-aligned... but not
// re-broken"); this pass only updates text content, leaving the line's
// existing geometry as the width-delta absorption contract assigns to
// glue at render time.
func Finalize(tree *area.Tree) {
	for _, p := range tree.Pages {
		area.Walk(&p.Area, func(a *area.Area) bool {
			if a.PageNumberRefID == "" {
				return true
			}
			if a.PageNumberRefID == area.CurrentPageRefID {
				a.Text = formatPageNumber(p.PageNumber)
				return true
			}
			target, ok := tree.Lookup(a.PageNumberRefID)
			if !ok {
				return true
			}
			owner := findOwningPage(tree, target)
			if owner != nil {
				a.Text = formatPageNumber(owner.PageNumber)
			}
			return true
		})
	}
}

func findOwningPage(tree *area.Tree, target *area.Area) *area.Page {
	for _, p := range tree.Pages {
		found := false
		area.Walk(&p.Area, func(a *area.Area) bool {
			if a == target {
				found = true
				return false
			}
			return true
		})
		if found {
			return p
		}
	}
	return nil
}

func formatPageNumber(n int) string {
	if n <= 0 {
		return ""
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
