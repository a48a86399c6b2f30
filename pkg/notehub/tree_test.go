package notehub

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

func strPtr(s string) *string {
	return &s
}

func group(id, name string, parentID *string) dto.Group {
	return dto.Group{
		ID:          id,
		Name:        name,
		WorkspaceID: "ws-1",
		UserID:      "user-1",
		ParentID:    parentID,
	}
}

// flatten renders a forest into comparable lines, depth-first.
func flatten(nodes []*dto.GroupTreeNode) []string {
	var lines []string
	var walk func(node *dto.GroupTreeNode)
	walk = func(node *dto.GroupTreeNode) {
		lines = append(lines, fmt.Sprintf("%d:%s:[%s]", node.Depth, node.Name, strings.Join(node.AncestorNames, "/")))
		for _, child := range node.Children {
			walk(child)
		}
	}
	for _, node := range nodes {
		walk(node)
	}
	return lines
}

func TestBuildTree_ParentChildLinks(t *testing.T) {
	groups := []dto.Group{
		group("g1", "Projects", nil),
		group("g2", "Work", strPtr("g1")),
		group("g3", "Personal", strPtr("g1")),
		group("g4", "Archive", nil),
	}

	roots := BuildTree(groups)

	require.Len(t, roots, 2)
	assert.Equal(t, "Archive", roots[0].Name)
	assert.Equal(t, "Projects", roots[1].Name)

	projects := roots[1]
	require.Len(t, projects.Children, 2)
	assert.Equal(t, "Personal", projects.Children[0].Name)
	assert.Equal(t, "Work", projects.Children[1].Name)
}

func TestBuildTree_SiblingsSortedByName(t *testing.T) {
	groups := []dto.Group{
		group("g1", "B", nil),
		group("g2", "A", nil),
		group("g3", "C", nil),
	}

	roots := BuildTree(groups)

	require.Len(t, roots, 3)
	assert.Equal(t, "A", roots[0].Name)
	assert.Equal(t, "B", roots[1].Name)
	assert.Equal(t, "C", roots[2].Name)
}

func TestBuildTree_MissingParentBecomesRoot(t *testing.T) {
	groups := []dto.Group{
		group("g1", "Alpha", nil),
		group("g2", "Orphan", strPtr("gone")),
	}

	roots := BuildTree(groups)

	require.Len(t, roots, 2)
	assert.Equal(t, "Alpha", roots[0].Name)
	assert.Equal(t, "Orphan", roots[1].Name)
	assert.Equal(t, 0, roots[1].Depth)
	assert.Empty(t, roots[1].AncestorNames)
}

func TestBuildTree_DepthAndAncestorNames(t *testing.T) {
	groups := []dto.Group{
		// Child listed before its parent on purpose; depth must still
		// come out right.
		group("g3", "Leaf", strPtr("g2")),
		group("g2", "Middle", strPtr("g1")),
		group("g1", "Root", nil),
	}

	roots := BuildTree(groups)

	require.Len(t, roots, 1)
	root := roots[0]
	assert.Equal(t, 0, root.Depth)
	assert.Empty(t, root.AncestorNames)

	middle := root.Children[0]
	assert.Equal(t, 1, middle.Depth)
	assert.Equal(t, []string{"Root"}, middle.AncestorNames)

	leaf := middle.Children[0]
	assert.Equal(t, 2, leaf.Depth)
	assert.Equal(t, []string{"Root", "Middle"}, leaf.AncestorNames)
}

func TestBuildTree_DeterministicUnderReordering(t *testing.T) {
	groups := []dto.Group{
		group("g1", "Projects", nil),
		group("g2", "Work", strPtr("g1")),
		group("g3", "Personal", strPtr("g1")),
		group("g4", "Deep", strPtr("g2")),
		group("g5", "Archive", nil),
	}

	reference := flatten(BuildTree(groups))

	permutations := [][]int{
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}

	for _, perm := range permutations {
		shuffled := make([]dto.Group, len(groups))
		for i, j := range perm {
			shuffled[i] = groups[j]
		}
		assert.Equal(t, reference, flatten(BuildTree(shuffled)))
	}
}

func TestBuildTree_DuplicateNamesKeepInputOrder(t *testing.T) {
	groups := []dto.Group{
		group("g1", "Same", nil),
		group("g2", "Same", nil),
	}

	roots := BuildTree(groups)

	require.Len(t, roots, 2)
	assert.Equal(t, "g1", roots[0].ID)
	assert.Equal(t, "g2", roots[1].ID)
}

func TestBuildTree_DoesNotMutateInput(t *testing.T) {
	groups := []dto.Group{
		group("g2", "Child", strPtr("g1")),
		group("g1", "Parent", nil),
	}
	original := make([]dto.Group, len(groups))
	copy(original, groups)

	BuildTree(groups)

	assert.Equal(t, original, groups)
}

func TestBuildTree_Empty(t *testing.T) {
	assert.Empty(t, BuildTree(nil))
}

func TestPathFor_RootGroup(t *testing.T) {
	groups := []dto.Group{group("g1", "Root", nil)}

	assert.Equal(t, []string{"Root"}, PathFor("g1", groups))
}

func TestPathFor_NestedGroup(t *testing.T) {
	groups := []dto.Group{
		group("g1", "Root", nil),
		group("g2", "Middle", strPtr("g1")),
		group("g3", "Leaf", strPtr("g2")),
	}

	assert.Equal(t, []string{"Root", "Middle", "Leaf"}, PathFor("g3", groups))
}

func TestPathFor_MissingGroup(t *testing.T) {
	groups := []dto.Group{group("g1", "Root", nil)}

	assert.Equal(t, []string{}, PathFor("missing", groups))
}

func TestPathFor_DanglingParentStopsWalk(t *testing.T) {
	groups := []dto.Group{group("g1", "Stranded", strPtr("gone"))}

	assert.Equal(t, []string{"Stranded"}, PathFor("g1", groups))
}

func TestPathFor_CycleGuard(t *testing.T) {
	// Malformed snapshot: two groups pointing at each other. The walk
	// must terminate.
	groups := []dto.Group{
		group("g1", "A", strPtr("g2")),
		group("g2", "B", strPtr("g1")),
	}

	assert.Equal(t, []string{"B", "A"}, PathFor("g1", groups))
}
