package run

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoSegments is returned when a run file defines no segments.
var ErrNoSegments = errors.New("run has no segments")

// Parse decodes a YAML run description.
func Parse(r io.Reader) (*Run, error) {
	var out Run
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode run: %w", err)
	}
	if len(out.Segments) == 0 {
		return nil, ErrNoSegments
	}

	// Older files only list attempts; keep the counter consistent with them.
	if n := uint32(len(out.Attempts)); out.AttemptCount < n {
		out.AttemptCount = n
	}
	return &out, nil
}

// Load reads a YAML run file from disk.
func Load(path string) (*Run, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open run file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Parse(file)
}

// Save writes the run as YAML to path.
func Save(path string, r *Run) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode run: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write run file: %w", err)
	}
	return nil
}
