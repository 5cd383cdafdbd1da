package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultArtifactName is the file the fitted model is persisted under.
const DefaultArtifactName = "basket_predictor.json"

// ErrModelNotFound is returned by a ModelStore when no artifact exists.
var ErrModelNotFound = errors.New("pricing: model artifact not found")

// ModelStore persists a fitted model across process restarts. Tests
// substitute a MemoryStore so they never touch the filesystem.
type ModelStore interface {
	Load() (*PriceModel, error)
	Save(*PriceModel) error
}

// FileStore persists the model as a JSON artifact on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultArtifactName
	}
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*PriceModel, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrModelNotFound
		}
		return nil, fmt.Errorf("load model artifact: %w", err)
	}

	var model PriceModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if len(model.Weights) != numFeatures {
		return nil, fmt.Errorf("model artifact has %d weights, expected %d", len(model.Weights), numFeatures)
	}
	return &model, nil
}

func (s *FileStore) Save(model *PriceModel) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model artifact: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write model artifact: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory ModelStore for tests.
type MemoryStore struct {
	model *PriceModel
}

func (s *MemoryStore) Load() (*PriceModel, error) {
	if s.model == nil {
		return nil, ErrModelNotFound
	}
	return s.model, nil
}

func (s *MemoryStore) Save(model *PriceModel) error {
	s.model = model
	return nil
}

// LoadOrTrain returns the persisted model when one exists, otherwise
// trains a fresh model and saves it. It runs once at startup, before
// any estimate is served.
func LoadOrTrain(store ModelStore) (*PriceModel, error) {
	model, err := store.Load()
	if err == nil {
		return model, nil
	}
	if !errors.Is(err, ErrModelNotFound) {
		return nil, err
	}

	model, err = TrainModel()
	if err != nil {
		return nil, err
	}
	if err := store.Save(model); err != nil {
		return nil, fmt.Errorf("persist trained model: %w", err)
	}
	return model, nil
}
