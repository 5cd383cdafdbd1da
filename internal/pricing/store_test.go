package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultArtifactName)
	store := NewFileStore(path)

	model, err := TrainModel()
	require.NoError(t, err)
	require.NoError(t, store.Save(model))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.InDeltaSlice(t, model.Weights, loaded.Weights, 1e-12)
}

func TestFileStoreMissingArtifact(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestFileStoreRejectsCorruptArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrModelNotFound)
}

func TestFileStoreRejectsWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"weights":[1,2,3]}`), 0o644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}

func TestLoadOrTrainTrainsOnce(t *testing.T) {
	store := &MemoryStore{}

	trained, err := LoadOrTrain(store)
	require.NoError(t, err)
	require.NotNil(t, trained)

	// Second call must load the persisted artifact, not retrain.
	loaded, err := LoadOrTrain(store)
	require.NoError(t, err)
	assert.Same(t, trained, loaded)
}
