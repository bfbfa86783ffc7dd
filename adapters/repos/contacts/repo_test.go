package contacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolodexd/rolodexd/entities/models"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	logger, _ := test.NewNullLogger()
	repo, err := NewRepo(t.TempDir(), logger)
	require.Nil(t, err)

	return repo
}

func Test_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	contact := &models.Contact{ID: "1", FirstName: "Ada", LastName: "Lovelace"}

	stored, err := repo.Put(ctx, contact)
	require.Nil(t, err)
	assert.Equal(t, contact, stored)

	fetched, err := repo.ByID(ctx, "1")
	require.Nil(t, err)
	assert.Equal(t, contact, fetched)
}

func Test_PutIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	contact := &models.Contact{ID: "1", FirstName: "Ada", LastName: "Lovelace"}

	_, err := repo.Put(ctx, contact)
	require.Nil(t, err)
	first, err := os.ReadFile(repo.pathOf("1"))
	require.Nil(t, err)

	_, err = repo.Put(ctx, contact)
	require.Nil(t, err)
	second, err := os.ReadFile(repo.pathOf("1"))
	require.Nil(t, err)

	assert.Equal(t, first, second, "storing the same record twice must produce the same file content")

	fetched, err := repo.ByID(ctx, "1")
	require.Nil(t, err)
	assert.Equal(t, contact, fetched)
}

func Test_PutOverwritesSameID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Put(ctx, &models.Contact{ID: "1", FirstName: "Ada", LastName: "Lovelace"})
	require.Nil(t, err)

	_, err = repo.Put(ctx, &models.Contact{ID: "1", FirstName: "Grace", LastName: "Hopper"})
	require.Nil(t, err)

	fetched, err := repo.ByID(ctx, "1")
	require.Nil(t, err)
	assert.Equal(t, "Grace", fetched.FirstName)
	assert.Equal(t, "Hopper", fetched.LastName)
}

func Test_DistinctIDsDistinctFiles(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Put(ctx, &models.Contact{ID: "1", FirstName: "Ada", LastName: "Lovelace"})
	require.Nil(t, err)
	_, err = repo.Put(ctx, &models.Contact{ID: "2", FirstName: "Grace", LastName: "Hopper"})
	require.Nil(t, err)

	assert.NotEqual(t, repo.pathOf("1"), repo.pathOf("2"))

	ada, err := repo.ByID(ctx, "1")
	require.Nil(t, err)
	assert.Equal(t, "Ada", ada.FirstName)

	grace, err := repo.ByID(ctx, "2")
	require.Nil(t, err)
	assert.Equal(t, "Grace", grace.FirstName)
}

func Test_ByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	contact, err := repo.ByID(context.Background(), "does-not-exist")
	require.NotNil(t, err, "a missing id must surface as an error, never as an empty record")
	assert.Nil(t, contact)
	assert.Equal(t, "no contact with id 'does-not-exist'", err.Error())
}

func Test_ByIDMalformedContent(t *testing.T) {
	repo := newTestRepo(t)

	err := os.WriteFile(repo.pathOf("broken"), []byte("{not json"), 0o644)
	require.Nil(t, err)

	_, err = repo.ByID(context.Background(), "broken")
	require.NotNil(t, err, "malformed content must surface as a recoverable error")
	assert.Contains(t, err.Error(), "unmarshal contact 'broken'")
}

func Test_PutLeavesNoTempFiles(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Put(ctx, &models.Contact{
			ID:        fmt.Sprintf("%d", i),
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		require.Nil(t, err)
	}

	matches, err := filepath.Glob(filepath.Join(repo.dataPath, ".put-*.tmp"))
	require.Nil(t, err)
	assert.Len(t, matches, 0)
}

func Test_NewRepoCreatesDataDir(t *testing.T) {
	logger, _ := test.NewNullLogger()
	dataPath := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewRepo(dataPath, logger)
	require.Nil(t, err)

	info, err := os.Stat(dataPath)
	require.Nil(t, err)
	assert.True(t, info.IsDir())
}
