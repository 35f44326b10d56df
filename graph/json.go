package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// jsonArc mirrors Arc for JSON decoding with human-readable field names.
type jsonArc struct {
	Input  int32   `json:"input"`
	Output int32   `json:"output"`
	Dest   StateId `json:"dest"`
	Weight float64 `json:"weight"`
}

// jsonGraph is the on-disk description of a VectorGraph: a flat list of
// states, each with its outgoing arcs and final flag, plus the start
// state. This is the graph input format cmd/ctcdecode's decode
// subcommand reads.
type jsonGraph struct {
	Start  StateId `json:"start"`
	States []struct {
		Arcs  []jsonArc `json:"arcs"`
		Final bool      `json:"final"`
	} `json:"states"`
}

// LoadVectorGraphJSON builds a VectorGraph from the JSON description read
// from r.
func LoadVectorGraphJSON(r io.Reader) (*VectorGraph, error) {
	var jg jsonGraph
	if err := json.NewDecoder(r).Decode(&jg); err != nil {
		return nil, fmt.Errorf("graph: decode JSON: %w", err)
	}

	g := NewVectorGraph(len(jg.States), jg.Start)
	for i, st := range jg.States {
		g.SetFinal(StateId(i), st.Final)
		for _, a := range st.Arcs {
			g.AddArc(StateId(i), Arc{Input: a.Input, Output: a.Output, Dest: a.Dest, Weight: a.Weight})
		}
	}
	return g, nil
}

// LoadVectorGraphJSONFile opens path and builds a VectorGraph from its
// JSON contents.
func LoadVectorGraphJSONFile(path string) (*VectorGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadVectorGraphJSON(f)
}
