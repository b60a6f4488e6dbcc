package prediction

import (
	"encoding/json"
	"fmt"
	"os"
)

// Chunk is one segment of model output text.
type Chunk struct {
	Content string `json:"content"`
}

// Source is a model output document holding an ordered list of chunks.
type Source struct {
	ChunkResponses []Chunk `json:"chunk_responses"`
}

// LoadFile reads and decodes a prediction source document.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction file: %w", err)
	}

	var src Source
	if err := json.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("failed to decode prediction file: %w", err)
	}

	return &src, nil
}
