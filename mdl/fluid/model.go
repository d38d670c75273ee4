// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for the intrinsic density of fluids
package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model defines fluid density models as functions of pressure p [Pa] and
// temperature T [K]
type Model interface {
	Init(prms utl.Params) error      // Init initialises this structure
	GetPrms(example bool) utl.Params // gets (an example) of parameters
	Rho(p, T float64) float64        // Rho returns ρ [kg/m³]
	DrhoDp(p, T float64) float64     // DrhoDp returns ∂ρ/∂p
	DrhoDT(p, T float64) float64     // DrhoDT returns ∂ρ/∂T
}

// New density model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'fluid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
