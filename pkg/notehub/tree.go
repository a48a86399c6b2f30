package notehub

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// BuildTree derives a forest of tree nodes from a flat group snapshot.
// A group whose parentId is unset, or points at a group missing from the
// snapshot, becomes a forest root. Siblings at every level are ordered by
// collated name; exact duplicate names keep their relative input order.
// The result is structurally identical no matter how the input is
// ordered, and the input is never mutated.
func BuildTree(groups []dto.Group) []*dto.GroupTreeNode {
	nodes := make(map[string]*dto.GroupTreeNode, len(groups))
	inputOrder := make(map[string]int, len(groups))
	for i, group := range groups {
		nodes[group.ID] = &dto.GroupTreeNode{
			Group:         group,
			Children:      []*dto.GroupTreeNode{},
			AncestorNames: []string{},
		}
		inputOrder[group.ID] = i
	}

	var roots []*dto.GroupTreeNode
	for _, group := range groups {
		node := nodes[group.ID]
		if group.ParentID != nil {
			if parent, ok := nodes[*group.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		// A dangling parent reference (snapshot race) lands here too.
		roots = append(roots, node)
	}

	collator := collate.New(language.Und)
	sortSiblings(collator, inputOrder, roots)
	for _, node := range nodes {
		sortSiblings(collator, inputOrder, node.Children)
	}

	// Depth and ancestor names are assigned top-down after linking so the
	// result does not depend on the order parents appear in the input.
	for _, root := range roots {
		annotate(root, 0, nil)
	}

	return roots
}

func sortSiblings(collator *collate.Collator, inputOrder map[string]int, siblings []*dto.GroupTreeNode) {
	sort.SliceStable(siblings, func(i, j int) bool {
		if cmp := collator.CompareString(siblings[i].Name, siblings[j].Name); cmp != 0 {
			return cmp < 0
		}
		return inputOrder[siblings[i].ID] < inputOrder[siblings[j].ID]
	})
}

func annotate(node *dto.GroupTreeNode, depth int, ancestors []string) {
	node.Depth = depth
	node.AncestorNames = ancestors
	if node.AncestorNames == nil {
		node.AncestorNames = []string{}
	}

	childAncestors := make([]string, len(ancestors)+1)
	copy(childAncestors, ancestors)
	childAncestors[len(ancestors)] = node.Name

	for _, child := range node.Children {
		annotate(child, depth+1, childAncestors)
	}
}

// PathFor walks parentId links upward from groupID through the flat
// snapshot and returns the root-first chain of names ending with the
// group's own. A missing id yields an empty path. Revisiting an id stops
// the walk; malformed data must not loop.
func PathFor(groupID string, groups []dto.Group) []string {
	byID := make(map[string]dto.Group, len(groups))
	for _, group := range groups {
		byID[group.ID] = group
	}

	current, ok := byID[groupID]
	if !ok {
		return []string{}
	}

	path := []string{current.Name}
	visited := map[string]bool{current.ID: true}

	for current.ParentID != nil {
		parent, ok := byID[*current.ParentID]
		if !ok || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		path = append([]string{parent.Name}, path...)
		current = parent
	}

	return path
}
