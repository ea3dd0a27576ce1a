package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/minichat/internal/server/chat"
)

// FileSource reads a seed from a JSON document of the form
//
//	{"members": [{"username": "...", "password": "..."}],
//	 "messages": [{"username": "...", "text": "..."}]}
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Load(ctx context.Context) (chat.Seed, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return chat.Seed{}, fmt.Errorf("open seed: %w", err)
	}
	defer file.Close()

	return decode(file)
}

func decode(r io.Reader) (chat.Seed, error) {
	var s chat.Seed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return chat.Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return s, nil
}
