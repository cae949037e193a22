package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ErrInvalidJob is returned when a job is malformed.
var ErrInvalidJob = errors.New("config: invalid job")

// Job describes one enumeration: which enumerator, over which inputs, and
// how many elements to print. The enum command builds it from flags; the run
// command decodes it from a JSON file such as
//
//	{
//	  "kind": "triples",
//	  "sources": [["a", "b"], [], ["x", "y", "z"]],
//	  "naturals": [1],
//	  "limit": 30
//	}
type Job struct {
	// Kind names the enumerator, e.g. "pairs" or "all-lists".
	Kind string `mapstructure:"kind"`
	// Sources holds one list of values per input.
	Sources [][]string `mapstructure:"sources"`
	// Naturals lists positions in Sources replaced by 0, 1, 2, …
	Naturals []int `mapstructure:"naturals"`
	// Size is the list length or minimum length, where the kind takes one.
	Size int `mapstructure:"size"`
	// Limit caps the printed elements; 0 defers to EnumConfig.Limit.
	Limit int `mapstructure:"limit"`
}

// DecodeJob converts a generic map, typically from encoding/json, into a Job
// and validates it.
func DecodeJob(raw map[string]any) (*Job, error) {
	var job Job
	if err := mapstructure.Decode(raw, &job); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	return &job, nil
}

// LoadJob reads a JSON job file.
func LoadJob(path string) (*Job, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidJob, path, err)
	}

	return DecodeJob(raw)
}

// Validate checks the fields that do not depend on the kind.
func (j *Job) Validate() error {
	if j.Kind == "" {
		return fmt.Errorf("%w: kind is required", ErrInvalidJob)
	}
	if j.Size < 0 {
		return fmt.Errorf("%w: size must be ≥ 0, got %d", ErrInvalidJob, j.Size)
	}
	if j.Limit < 0 {
		return fmt.Errorf("%w: limit must be ≥ 0, got %d", ErrInvalidJob, j.Limit)
	}
	for _, k := range j.Naturals {
		if k < 0 || k >= len(j.Sources) {
			return fmt.Errorf("%w: naturals position %d outside %d sources", ErrInvalidJob, k, len(j.Sources))
		}
	}

	return nil
}

// EffectiveLimit returns j.Limit, or fallback when the job leaves it unset.
func (j *Job) EffectiveLimit(fallback int) int {
	if j.Limit > 0 {
		return j.Limit
	}

	return fallback
}
