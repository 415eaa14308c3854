package gradient

import (
	"encoding/json"
	"fmt"
	"os"
)

// metadata stores what's needed to rebuild a gradient, so a PNG can ship
// with a small sidecar describing how it was made.
type metadata struct {
	Start string
	End   string
	Steps int
	Width int
}

// encodeJSON returns the JSON data representation of our metadata
func encodeJSON(m *metadata) ([]byte, error) {
	return json.Marshal(m)
}

// decodeJSON turns the JSON data representation into a metadata struct
func decodeJSON(data []byte) (*metadata, error) {
	m := &metadata{}
	return m, json.Unmarshal(data, m)
}

// WriteMetadata saves the gradient's endpoints, step count and width as JSON.
func (g *Gradient) WriteMetadata(path string) error {
	data, err := encodeJSON(&metadata{
		Start: g.start.String(),
		End:   g.end.String(),
		Steps: g.steps,
		Width: g.width,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0640)
}

// LoadMetadata rebuilds a gradient from a file written by WriteMetadata.
// Options given here are applied after the stored width.
func LoadMetadata(path string, opts ...Option) (*Gradient, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("expected gradient metadata file got directory %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	meta, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	start, err := ParseHex(meta.Start)
	if err != nil {
		return nil, fmt.Errorf("metadata start: %w", err)
	}
	end, err := ParseHex(meta.End)
	if err != nil {
		return nil, fmt.Errorf("metadata end: %w", err)
	}
	return New(start, end, meta.Steps, append([]Option{Width(meta.Width)}, opts...)...)
}
