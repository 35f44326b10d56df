package oracle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ieee0824/ctcfasterdecoder/internal/mathutil"
)

// jsonMatrixOracle is the on-disk description of a MatrixOracle: the
// label alphabet in column order, the blank/block label, and the dense
// frame-by-label log-likelihood table. This is the oracle input format
// cmd/ctcdecode's decode subcommand reads.
type jsonMatrixOracle struct {
	Labels     []Label     `json:"labels"`
	BlockLabel Label       `json:"block_label"`
	LL         [][]float64 `json:"log_likelihoods"`
}

// LoadMatrixOracleJSON builds a MatrixOracle from the JSON description
// read from r.
func LoadMatrixOracleJSON(r io.Reader) (*MatrixOracle, error) {
	var jm jsonMatrixOracle
	if err := json.NewDecoder(r).Decode(&jm); err != nil {
		return nil, fmt.Errorf("oracle: decode JSON: %w", err)
	}
	if len(jm.Labels) == 0 {
		return nil, fmt.Errorf("oracle: labels must be non-empty")
	}

	ll := mathutil.Mat(jm.LL)
	return NewMatrixOracle(ll, jm.Labels, jm.BlockLabel), nil
}

// LoadMatrixOracleJSONFile opens path and builds a MatrixOracle from its
// JSON contents.
func LoadMatrixOracleJSONFile(path string) (*MatrixOracle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("oracle: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadMatrixOracleJSON(f)
}
