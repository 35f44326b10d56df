package oracle

import (
	"strings"
	"testing"
)

func TestLoadMatrixOracleJSON(t *testing.T) {
	body := `{
		"labels": [99, 1],
		"block_label": 99,
		"log_likelihoods": [[0.0, -1.0], [-2.0, -3.0]]
	}`

	o, err := LoadMatrixOracleJSON(strings.NewReader(body))
	if err != nil {
		t.Fatalf("LoadMatrixOracleJSON: %v", err)
	}
	if o.NumFramesReady() != 2 {
		t.Fatalf("NumFramesReady() = %d, want 2", o.NumFramesReady())
	}
	if o.GetBlockTransitionId() != 99 {
		t.Fatalf("GetBlockTransitionId() = %v, want 99", o.GetBlockTransitionId())
	}
	if o.LogLikelihood(1, 1) != -3.0 {
		t.Fatalf("LogLikelihood(1, 1) = %v, want -3.0", o.LogLikelihood(1, 1))
	}
}

func TestLoadMatrixOracleJSON_EmptyLabelsRejected(t *testing.T) {
	body := `{"labels": [], "block_label": 0, "log_likelihoods": []}`
	if _, err := LoadMatrixOracleJSON(strings.NewReader(body)); err == nil {
		t.Fatal("expected an error for an empty label alphabet")
	}
}
