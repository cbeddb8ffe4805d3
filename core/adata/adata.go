// Package adata is the narrow, read-only interface onto the
// approximate-heuristic and lower-bound tables. Loading the fixed CSV
// formats is handled here; the offline sweeps that produce the tables
// are an external collaborator.
package adata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// AnalysisData answers "what's the expected/lower-bound tot for an
// answer set of size n", falling back to "unknown" (false) when the
// table doesn't cover n or wasn't loaded at all.
type AnalysisData interface {
	GetApprox(n int) (float64, bool)
	GetLowerBound(n int) (uint32, bool)
}

// Table is the in-memory AnalysisData backing, 1-indexed by answer-set
// size (GetApprox(1) is the first loaded row).
type Table struct {
	approx []float64
	lbound []uint32
}

var _ AnalysisData = (*Table)(nil)

// LoadApprox reads the heuristic-data CSV (header "n,h").
func LoadApprox(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("adata: open %s: %w", path, err)
	}
	defer f.Close()
	return readFloatColumn(f)
}

// LoadLowerBounds reads the lower-bounds CSV (header "n,lb").
func LoadLowerBounds(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("adata: open %s: %w", path, err)
	}
	defer f.Close()
	return readUintColumn(f)
}

// Load builds a Table from both files. Either path may be empty,
// leaving that table absent. A missing or malformed file makes Load
// return an error and a nil *Table; a nil *Table (or one with empty
// tables) answers every lookup as absent rather than crashing.
func Load(approxPath, lboundPath string) (*Table, error) {
	var t Table
	if approxPath != "" {
		approx, err := LoadApprox(approxPath)
		if err != nil {
			return nil, err
		}
		t.approx = approx
	}
	if lboundPath != "" {
		lbound, err := LoadLowerBounds(lboundPath)
		if err != nil {
			return nil, err
		}
		t.lbound = lbound
	}
	return &t, nil
}

func readFloatColumn(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	if _, err := reader.Read(); err != nil { // header
		return nil, fmt.Errorf("adata: reading header: %w", err)
	}
	var out []float64
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("adata: malformed row: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		var v float64
		if _, err := fmt.Sscanf(rec[1], "%g", &v); err != nil {
			return nil, fmt.Errorf("adata: malformed value %q: %w", rec[1], err)
		}
		out = append(out, v)
	}
	return out, nil
}

func readUintColumn(r io.Reader) ([]uint32, error) {
	reader := csv.NewReader(r)
	if _, err := reader.Read(); err != nil { // header
		return nil, fmt.Errorf("adata: reading header: %w", err)
	}
	var out []uint32
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("adata: malformed row: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		var v uint32
		if _, err := fmt.Sscanf(rec[1], "%d", &v); err != nil {
			return nil, fmt.Errorf("adata: malformed value %q: %w", rec[1], err)
		}
		out = append(out, v)
	}
	return out, nil
}

// GetApprox returns the expected tot for an answer set of size n.
func (t *Table) GetApprox(n int) (float64, bool) {
	if t == nil || n < 1 || n > len(t.approx) {
		return 0, false
	}
	return t.approx[n-1], true
}

// GetLowerBound returns the tightest observed lower bound on tot for
// an answer set of size n.
func (t *Table) GetLowerBound(n int) (uint32, bool) {
	if t == nil || n < 1 || n > len(t.lbound) {
		return 0, false
	}
	return t.lbound[n-1], true
}
