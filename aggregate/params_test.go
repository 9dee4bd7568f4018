// Copyright (c) 2026, Exemplar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	pr := NewParams()
	assert.NoError(t, pr.Validate())

	bad := []func(*Params){
		func(p *Params) { p.MinRows = 0 },
		func(p *Params) { p.NBins = -1 },
		func(p *Params) { p.NXBins = 0 },
		func(p *Params) { p.NYBins = 0 },
		func(p *Params) { p.NDBins = 0 },
		func(p *Params) { p.MaxDimensions = 0 },
		func(p *Params) { p.Epsilon = 0 },
	}
	for _, fn := range bad {
		p := NewParams()
		fn(p)
		assert.ErrorIs(t, p.Validate(), ErrInvalidArgument)
	}
}

func TestParamsTOMLRoundTrip(t *testing.T) {
	pr := NewParams()
	pr.NBins = 12
	pr.Seed = 42
	fn := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, SaveParams(pr, fn))
	got, err := OpenParams(fn)
	require.NoError(t, err)
	assert.Equal(t, pr, got)
}

func TestParamsYAMLRoundTrip(t *testing.T) {
	pr := NewParams()
	pr.NXBins = 9
	pr.MaxDimensions = 3
	fn := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, SaveParams(pr, fn))
	got, err := OpenParams(fn)
	require.NoError(t, err)
	assert.Equal(t, pr, got)
}

func TestOpenParamsYAMLFields(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "params.yml")
	require.NoError(t, os.WriteFile(fn, []byte("n_bins: 4\nseed: 17\n"), 0o666))
	pr, err := OpenParams(fn)
	require.NoError(t, err)
	assert.Equal(t, 4, pr.NBins)
	assert.Equal(t, int64(17), pr.Seed)
	// unspecified fields keep defaults
	assert.Equal(t, 500, pr.MinRows)
}

func TestOpenParamsBadExtension(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "params.ini")
	require.NoError(t, os.WriteFile(fn, []byte("n_bins=4\n"), 0o666))
	_, err := OpenParams(fn)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
