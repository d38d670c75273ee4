// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Constant implements a temperature- and density-independent viscosity
type Constant struct {
	mu0 float64 // viscosity value [Pa·s]
}

// add model to factory
func init() {
	allocators["const"] = func() Model { return new(Constant) }
}

// Init initialises this structure
func (o *Constant) Init(prms utl.Params) error {
	for _, p := range prms {
		switch p.N {
		case "mu0":
			o.mu0 = p.V
		default:
			return chk.Err("const: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Constant) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "mu0", V: 1.002e-3}, // water at 20 °C [Pa·s]
		}
	}
	return utl.Params{
		&utl.P{N: "mu0", V: o.mu0},
	}
}

// Mu returns μ [Pa·s]
func (o Constant) Mu(T, rho float64) float64 {
	return o.mu0
}

// DmuDT returns ∂μ/∂T
func (o Constant) DmuDT(T, rho float64) float64 {
	return 0
}

// DmuDrho returns ∂μ/∂rho
func (o Constant) DmuDrho(T, rho float64) float64 {
	return 0
}
