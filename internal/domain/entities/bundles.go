package entities

import "strings"

const ktxSuffix = "-ktx"

// BundleIndex groups dependencies that advice treats as one unit. A bundle is
// keyed by its parent, a direct dependency of the project; every member,
// the parent included, points back at that parent.
//
// The index is complete once NewBundleIndex returns and is only read afterwards.
type BundleIndex struct {
	members map[string]map[string]bool
	parents map[string]string
	usages  *UsageMap
}

// NewBundleIndex builds the index from every view's direct project children,
// applying the user rules and, when ignoreKtx is set, the ktx companion rule.
func NewBundleIndex(
	project Coordinates,
	views []*DependencyGraphView,
	rules *BundleRules,
	usages *UsageMap,
	ignoreKtx bool,
) *BundleIndex {
	if usages == nil {
		usages = NewUsageMap()
	}
	index := &BundleIndex{
		members: map[string]map[string]bool{},
		parents: map[string]string{},
		usages:  usages,
	}

	for _, view := range sortedViews(views) {
		for _, parent := range view.Children(project) {
			index.applyRules(view, parent, rules)
			if ignoreKtx {
				index.applyKtx(view, parent)
			}
		}
	}

	return index
}

func (it *BundleIndex) applyRules(view *DependencyGraphView, parent Coordinates, rules *BundleRules) {
	matching := rules.Matching(parent.Identifier)
	if len(matching) == 0 {
		return
	}
	reachable := view.Reachable(parent)
	for _, rule := range matching {
		for _, node := range reachable {
			if rule.Matches(node.Identifier) {
				it.add(parent, node)
			}
		}
	}
}

func (it *BundleIndex) applyKtx(view *DependencyGraphView, parent Coordinates) {
	if !strings.HasSuffix(parent.Identifier, ktxSuffix) {
		return
	}
	base := strings.TrimSuffix(parent.Identifier, ktxSuffix)
	for _, child := range view.Children(parent) {
		if child.Identifier == base {
			it.add(parent, child)
			return
		}
	}
}

func (it *BundleIndex) add(parent, member Coordinates) {
	set, ok := it.members[parent.Identifier]
	if !ok {
		set = map[string]bool{parent.Identifier: true}
		it.members[parent.Identifier] = set
	}
	set[member.Identifier] = true

	// first writer wins
	if _, ok := it.parents[parent.Identifier]; !ok {
		it.parents[parent.Identifier] = parent.Identifier
	}
	if _, ok := it.parents[member.Identifier]; !ok {
		it.parents[member.Identifier] = parent.Identifier
	}
}

// HasParentInBundle reports whether the coordinates belong to any bundle.
// Parents belong to their own bundle.
func (it *BundleIndex) HasParentInBundle(c Coordinates) bool {
	_, ok := it.parents[c.Identifier]
	return ok
}

// HasUsedChild reports whether c is a bundle parent with at least one member
// that has a usage outside BucketNone.
func (it *BundleIndex) HasUsedChild(c Coordinates) bool {
	members, ok := it.members[c.Identifier]
	if !ok {
		return false
	}
	for member := range members {
		if it.usages.isUsed(Coordinates{Identifier: member}) {
			return true
		}
	}
	return false
}
