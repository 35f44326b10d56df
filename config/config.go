// Package config loads the YAML job description consumed by cmd/ctcdecode:
// decoder pruning parameters plus the paths to the graph and oracle inputs
// for one decode run. It follows a load/applyDefaults/Validate idiom
// familiar from other services in this codebase's lineage.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ieee0824/ctcfasterdecoder/decoder"
)

// Decoder mirrors decoder.Config with YAML tags and zero-value defaults
// that applyDefaults fills in when a job file omits them.
type Decoder struct {
	Beam      float64 `yaml:"beam"`
	MaxActive int     `yaml:"max_active"`
	MinActive int     `yaml:"min_active"`
	BeamDelta float64 `yaml:"beam_delta"`
	HashRatio float64 `yaml:"hash_ratio"`
}

// ToDecoderConfig converts to decoder.Config.
func (d Decoder) ToDecoderConfig() decoder.Config {
	return decoder.Config{
		Beam:      d.Beam,
		MaxActive: d.MaxActive,
		MinActive: d.MinActive,
		BeamDelta: d.BeamDelta,
		HashRatio: d.HashRatio,
	}
}

// Job describes one decode run: where the graph and oracle inputs live,
// the decoder parameters to run with, and where to persist the result.
type Job struct {
	// GraphPath is a JSON-encoded VectorGraph description (see
	// graph.LoadVectorGraphJSON).
	GraphPath string `yaml:"graph_path"`
	// OraclePath is a JSON-encoded frame-by-label log-likelihood matrix
	// (see oracle.LoadMatrixOracleJSON); its block_label field supplies
	// the blank transition id reported through Oracle.GetBlockTransitionId.
	OraclePath string `yaml:"oracle_path"`
	// StorePath is the SQLite database path recording finished runs.
	// Empty disables history persistence.
	StorePath string `yaml:"store_path"`
	// LogLevel is one of debug/info/warn/error.
	LogLevel string `yaml:"log_level"`
	// Decoder holds the pruning configuration for this run.
	Decoder Decoder `yaml:"decoder"`
	// MaxFrames caps how many frames a single AdvanceDecoding call
	// consumes; negative means no limit.
	MaxFrames int `yaml:"max_frames"`
	// UseFinalProbs restricts GetBestPath to final states when set.
	UseFinalProbs bool `yaml:"use_final_probs"`
}

// Load reads and validates a Job from a YAML file at path, applying
// defaults for anything the file leaves at its zero value.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	job.applyDefaults()

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &job, nil
}

// applyDefaults fills in the decoder defaults (decoder.DefaultConfig)
// for any field a job file left at zero.
func (j *Job) applyDefaults() {
	defaults := decoder.DefaultConfig()
	if j.Decoder.Beam == 0 {
		j.Decoder.Beam = defaults.Beam
	}
	if j.Decoder.MaxActive == 0 {
		j.Decoder.MaxActive = defaults.MaxActive
	}
	if j.Decoder.BeamDelta == 0 {
		j.Decoder.BeamDelta = defaults.BeamDelta
	}
	if j.Decoder.HashRatio == 0 {
		j.Decoder.HashRatio = defaults.HashRatio
	}
	if j.LogLevel == "" {
		j.LogLevel = "info"
	}
	if j.MaxFrames == 0 {
		j.MaxFrames = -1
	}
}

// Validate checks the job is complete and that its decoder section
// satisfies decoder.Config's construction constraints.
func (j *Job) Validate() error {
	if j.GraphPath == "" {
		return fmt.Errorf("graph_path is required")
	}
	if j.OraclePath == "" {
		return fmt.Errorf("oracle_path is required")
	}
	if err := j.Decoder.ToDecoderConfig().Validate(); err != nil {
		return err
	}
	return nil
}
