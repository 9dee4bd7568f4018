// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Params are the aggregation parameters, controlling how rows are
// grouped into exemplars. The zero value is not valid: use
// [NewParams] or call [Params.Defaults] first.
type Params struct {
	// MinRows is the minimum number of rows below which aggregation
	// is an identity passthrough: each row becomes its own exemplar.
	MinRows int `toml:"min_rows" yaml:"min_rows"`

	// NBins is the number of bins for single-column numeric grouping.
	NBins int `toml:"n_bins" yaml:"n_bins"`

	// NXBins is the number of bins on the first axis for
	// two-column grouping.
	NXBins int `toml:"nx_bins" yaml:"nx_bins"`

	// NYBins is the number of bins on the second axis for
	// two-column grouping.
	NYBins int `toml:"ny_bins" yaml:"ny_bins"`

	// NDBins is the maximum number of exemplars retained on the
	// high-dimensional grouping path.
	NDBins int `toml:"nd_bins" yaml:"nd_bins"`

	// MaxDimensions is the column-count threshold above which the
	// high-dimensional path projects rows down to MaxDimensions
	// dimensions through a seeded random projection.
	MaxDimensions int `toml:"max_dimensions" yaml:"max_dimensions"`

	// Seed seeds the random projection generator, so that identical
	// seeds produce identical exemplar assignments.
	Seed int64 `toml:"seed" yaml:"seed"`

	// Epsilon is the tolerance used in floating-point bin boundary
	// computations, keeping the maximum value inside the last bin.
	Epsilon float64 `toml:"epsilon" yaml:"epsilon"`
}

// NewParams returns new [Params] initialized with default values.
func NewParams() *Params {
	pr := &Params{}
	pr.Defaults()
	return pr
}

// Defaults sets default parameter values.
func (pr *Params) Defaults() {
	pr.MinRows = 500
	pr.NBins = 500
	pr.NXBins = 50
	pr.NYBins = 50
	pr.NDBins = 500
	pr.MaxDimensions = 50
	pr.Seed = 0
	pr.Epsilon = 1e-9
}

// Validate returns an [ErrInvalidArgument] error if any parameter
// is out of range. Validation happens before any row is processed.
func (pr *Params) Validate() error {
	if pr.MinRows <= 0 {
		return fmt.Errorf("aggregate.Params: min_rows must be positive, got %d: %w", pr.MinRows, ErrInvalidArgument)
	}
	if pr.NBins <= 0 {
		return fmt.Errorf("aggregate.Params: n_bins must be positive, got %d: %w", pr.NBins, ErrInvalidArgument)
	}
	if pr.NXBins <= 0 {
		return fmt.Errorf("aggregate.Params: nx_bins must be positive, got %d: %w", pr.NXBins, ErrInvalidArgument)
	}
	if pr.NYBins <= 0 {
		return fmt.Errorf("aggregate.Params: ny_bins must be positive, got %d: %w", pr.NYBins, ErrInvalidArgument)
	}
	if pr.NDBins <= 0 {
		return fmt.Errorf("aggregate.Params: nd_bins must be positive, got %d: %w", pr.NDBins, ErrInvalidArgument)
	}
	if pr.MaxDimensions <= 0 {
		return fmt.Errorf("aggregate.Params: max_dimensions must be positive, got %d: %w", pr.MaxDimensions, ErrInvalidArgument)
	}
	if pr.Epsilon <= 0 {
		return fmt.Errorf("aggregate.Params: epsilon must be positive, got %g: %w", pr.Epsilon, ErrInvalidArgument)
	}
	return nil
}

// OpenParams reads [Params] from the given TOML or YAML file,
// based on the file extension, on top of default values.
func OpenParams(filename string) (*Params, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	pr := NewParams()
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		err = toml.Unmarshal(b, pr)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, pr)
	default:
		return nil, fmt.Errorf("aggregate.OpenParams: unsupported config file extension %q: %w", ext, ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}
	return pr, pr.Validate()
}

// SaveParams writes the given [Params] to the given TOML or YAML
// file, based on the file extension.
func SaveParams(pr *Params, filename string) error {
	var b []byte
	var err error
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		b, err = toml.Marshal(pr)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(pr)
	default:
		return fmt.Errorf("aggregate.SaveParams: unsupported config file extension %q: %w", ext, ErrInvalidArgument)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o666)
}
