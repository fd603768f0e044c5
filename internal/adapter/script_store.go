package adapter

import (
	"fmt"
	"os"

	"github.com/codeclear/unveil/internal/model"
)

// ScriptStore loads and saves serialized program trees on disk, picking the
// codec from each path's extension.
type ScriptStore interface {
	Load(path model.Path) (*model.Node, error)
	Save(path model.Path, root *model.Node) error
}

type fsScriptStore struct{}

// NewScriptStore constructs a filesystem-backed ScriptStore.
func NewScriptStore() ScriptStore {
	return fsScriptStore{}
}

func (fsScriptStore) Load(path model.Path) (*model.Node, error) {
	codec, err := CodecFor(string(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	file, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open tree: %w", err)
	}
	defer file.Close()

	root, err := codec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func (fsScriptStore) Save(path model.Path, root *model.Node) error {
	codec, err := CodecFor(string(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	file, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create tree file: %w", err)
	}

	if err := codec.Encode(file, root); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}
