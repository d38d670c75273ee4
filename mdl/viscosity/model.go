// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viscosity implements models for the dynamic viscosity of fluids
package viscosity

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Model defines fluid dynamic viscosity models as functions of
// temperature T [K] and density rho [kg/m³]
type Model interface {
	Init(prms utl.Params) error      // Init initialises this structure
	GetPrms(example bool) utl.Params // gets (an example) of parameters
	Mu(T, rho float64) float64       // Mu returns μ [Pa·s]
	DmuDT(T, rho float64) float64    // DmuDT returns ∂μ/∂T [Pa·s/K]
	DmuDrho(T, rho float64) float64  // DmuDrho returns ∂μ/∂rho [Pa·s·m³/kg]
}

// New viscosity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'viscosity' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
