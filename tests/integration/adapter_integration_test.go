package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/notehub"
	"github.com/notehubapp/notehub-mcp/tests/testutils"
)

// TestGroupHierarchyLifecycle runs the full organize-then-clean-up flow
// an agent typically performs: materialize a path, file a note into the
// leaf group, inspect the tree, then cascade-delete the whole branch.
func TestGroupHierarchyLifecycle(t *testing.T) {
	fake := testutils.NewFakeNoteHub(t)
	ws := fake.SeedWorkspace("Personal", true)

	services := notehub.NewServices(client.New(fake.URL(), "test-token"), ws.ID)
	ctx := context.Background()

	// Materialize a three-level path, twice. The second call must be a
	// pure reuse.
	first, err := services.Groups.CreatePath(ctx, []string{"Projects", "2026", "Q3"}, "")
	require.NoError(t, err)
	second, err := services.Groups.CreatePath(ctx, []string{"Projects", "2026", "Q3"}, "")
	require.NoError(t, err)
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	assert.Equal(t, 3, fake.GroupCount())

	// A sibling branch under the shared prefix.
	branch, err := services.Groups.CreatePath(ctx, []string{"Projects", "2026", "Q4"}, "")
	require.NoError(t, err)
	assert.Equal(t, first[1].ID, *branch[2].ParentID)
	assert.Equal(t, 4, fake.GroupCount())

	// File a note into the leaf and give it some todos.
	leaf := first[2]
	note, err := services.Notes.Create(ctx, notehub.CreateNoteParams{
		Name:    "Quarter plan",
		Content: "# Goals",
		GroupID: &leaf.ID,
	})
	require.NoError(t, err)

	results := services.Todos.CreateBatch(ctx, note.ID, []string{"ship v1", "write docs"}, 2)
	require.Len(t, results, 2)
	for _, result := range results {
		require.NotNil(t, result.Todo)
	}

	// The tree reflects the structure, and the leaf's path reads
	// root-first.
	tree, err := services.Groups.Tree(ctx, "")
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Projects", tree[0].Name)

	path, err := services.Groups.Path(ctx, leaf.ID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Projects", "2026", "Q3"}, path)

	// Cascade-delete the root: everything beneath goes with it.
	deleted, err := services.Groups.Delete(ctx, first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 4, deleted.DeletedCount)
	assert.Equal(t, 0, fake.GroupCount())
}

func TestNoteLifecycleAcrossViews(t *testing.T) {
	fake := testutils.NewFakeNoteHub(t)
	ws := fake.SeedWorkspace("Personal", true)

	services := notehub.NewServices(client.New(fake.URL(), "test-token"), ws.ID)
	ctx := context.Background()

	note, err := services.Notes.Create(ctx, notehub.CreateNoteParams{Name: "Journal", Content: "day one"})
	require.NoError(t, err)

	_, err = services.Notes.Append(ctx, note.ID, "day two")
	require.NoError(t, err)

	updated, err := services.Notes.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "day one\n\nday two", updated.Content)

	// Soft delete keeps the id but flips the view.
	_, err = services.Notes.Delete(ctx, note.ID)
	require.NoError(t, err)

	isDeleted := false
	live, err := services.Notes.List(ctx, notehub.ListNotesOptions{IsDeleted: &isDeleted})
	require.NoError(t, err)
	assert.Empty(t, live)

	isDeleted = true
	trash, err := services.Notes.List(ctx, notehub.ListNotesOptions{IsDeleted: &isDeleted})
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, note.ID, trash[0].ID)
}
