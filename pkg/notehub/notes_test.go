package notehub_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehubapp/notehub-mcp/pkg/client"
	"github.com/notehubapp/notehub-mcp/pkg/notehub"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestNotes_CreateAndGet(t *testing.T) {
	services, fake := newServices(t, "")
	ws := fake.SeedWorkspace("Personal", true)
	ctx := context.Background()

	created, err := services.Notes.Create(ctx, notehub.CreateNoteParams{
		Name:        "Meeting notes",
		Content:     "# Agenda",
		WorkspaceID: ws.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := services.Notes.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meeting notes", fetched.Name)
	assert.Equal(t, "# Agenda", fetched.Content)
	assert.False(t, fetched.IsDeleted)
}

func TestNotes_GetMissingIsNotFound(t *testing.T) {
	services, _ := newServices(t, "")

	_, err := services.Notes.Get(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, client.IsCode(err, client.CodeNotFound))
}

func TestNotes_SoftDeleteMovesToTrashView(t *testing.T) {
	services, fake := newServices(t, "")
	ws := fake.SeedWorkspace("Personal", true)
	note := fake.SeedNote(ws.ID, "Doomed", "bye")
	ctx := context.Background()

	deleted, err := services.Notes.Delete(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
	assert.NotNil(t, deleted.DeletedAt)
	assert.Equal(t, note.ID, deleted.ID)

	live, err := services.Notes.List(ctx, notehub.ListNotesOptions{
		WorkspaceID: ws.ID,
		IsDeleted:   boolPtr(false),
	})
	require.NoError(t, err)
	for _, n := range live {
		assert.False(t, n.IsDeleted)
	}
	assert.Empty(t, live)

	trash, err := services.Notes.List(ctx, notehub.ListNotesOptions{
		WorkspaceID: ws.ID,
		IsDeleted:   boolPtr(true),
	})
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, note.ID, trash[0].ID)
}

func TestNotes_AppendSeparatesWithBlankLine(t *testing.T) {
	services, fake := newServices(t, "")
	ws := fake.SeedWorkspace("Personal", true)
	note := fake.SeedNote(ws.ID, "Log", "first entry")
	ctx := context.Background()

	updated, err := services.Notes.Append(ctx, note.ID, "second entry")

	require.NoError(t, err)
	assert.Equal(t, "first entry\n\nsecond entry", updated.Content)
}

func TestNotes_AppendToEmptyNoteSkipsSeparator(t *testing.T) {
	services, fake := newServices(t, "")
	ws := fake.SeedWorkspace("Personal", true)
	note := fake.SeedNote(ws.ID, "Blank", "")
	ctx := context.Background()

	updated, err := services.Notes.Append(ctx, note.ID, "only entry")

	require.NoError(t, err)
	assert.Equal(t, "only entry", updated.Content)
}

func TestNotes_FindByNameSoftMiss(t *testing.T) {
	services, fake := newServices(t, "")
	ws := fake.SeedWorkspace("Personal", true)
	fake.SeedNote(ws.ID, "Exists", "")
	ctx := context.Background()

	found, err := services.Notes.FindByName(ctx, ws.ID, "Exists")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Exists", found.Name)

	missing, err := services.Notes.FindByName(ctx, ws.ID, "Nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNotes_RecentNewestFirst(t *testing.T) {
	services, fake := newServices(t, "")
	ws := fake.SeedWorkspace("Personal", true)
	older := fake.SeedNote(ws.ID, "Older", "")
	newer := fake.SeedNote(ws.ID, "Newer", "")
	ctx := context.Background()

	// Touch the newer note so its update time clearly wins.
	time.Sleep(5 * time.Millisecond)
	content := "bump"
	_, err := services.Notes.Update(ctx, newer.ID, notehub.UpdateNoteParams{Content: &content})
	require.NoError(t, err)

	recent, err := services.Notes.Recent(ctx, ws.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, newer.ID, recent[0].ID)
	assert.Equal(t, older.ID, recent[1].ID)
}

func TestNotes_SearchFiltersByText(t *testing.T) {
	services, fake := newServices(t, "")
	ws := fake.SeedWorkspace("Personal", true)
	match := fake.SeedNote(ws.ID, "Grocery list", "apples, oranges")
	fake.SeedNote(ws.ID, "Diary", "dear diary")
	ctx := context.Background()

	results, err := services.Notes.Search(ctx, ws.ID, "oranges")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0].ID)
}

func TestNotes_StatsCountByState(t *testing.T) {
	services, fake := newServices(t, "")
	ws := fake.SeedWorkspace("Personal", true)
	fake.SeedNote(ws.ID, "One", "")
	fake.SeedNote(ws.ID, "Two", "")
	doomed := fake.SeedNote(ws.ID, "Three", "")
	ctx := context.Background()

	_, err := services.Notes.Delete(ctx, doomed.ID)
	require.NoError(t, err)

	stats, err := services.Notes.Stats(ctx, ws.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Deleted)
	assert.Equal(t, 0, stats.Encrypted)
}
