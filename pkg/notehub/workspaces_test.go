package notehub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaces_List(t *testing.T) {
	services, fake := newServices(t, "")
	fake.SeedWorkspace("Personal", true)
	fake.SeedWorkspace("Work", false)

	workspaces, err := services.Workspaces.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, workspaces, 2)
}

func TestWorkspaces_Default(t *testing.T) {
	services, fake := newServices(t, "")
	fake.SeedWorkspace("Work", false)
	def := fake.SeedWorkspace("Personal", true)

	found, err := services.Workspaces.Default(context.Background())

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, def.ID, found.ID)
}

func TestWorkspaces_DefaultSoftMiss(t *testing.T) {
	services, fake := newServices(t, "")
	fake.SeedWorkspace("Work", false)

	found, err := services.Workspaces.Default(context.Background())

	require.NoError(t, err)
	assert.Nil(t, found)
}
