// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Expo implements an exponential temperature-dependent viscosity
//   μ(T) = mu0・exp(-(T - Tc)/Tv)   thus   ∂μ/∂T = -μ/Tv
type Expo struct {
	mu0 float64 // viscosity at the reference temperature [Pa·s]
	tc  float64 // reference temperature [K]
	tv  float64 // decay temperature [K]
}

// add model to factory
func init() {
	allocators["expo"] = func() Model { return new(Expo) }
}

// Init initialises this structure
func (o *Expo) Init(prms utl.Params) error {
	for _, p := range prms {
		switch p.N {
		case "mu0":
			o.mu0 = p.V
		case "tc":
			o.tc = p.V
		case "tv":
			o.tv = p.V
		default:
			return chk.Err("expo: parameter named %q is incorrect", p.N)
		}
	}
	if o.tv <= 0 {
		return chk.Err("expo: decay temperature tv must be positive")
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o Expo) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "mu0", V: 1.0e-3}, // [Pa·s]
			&utl.P{N: "tc", V: 293.15},  // [K]
			&utl.P{N: "tv", V: 368.0},   // [K]
		}
	}
	return utl.Params{
		&utl.P{N: "mu0", V: o.mu0},
		&utl.P{N: "tc", V: o.tc},
		&utl.P{N: "tv", V: o.tv},
	}
}

// Mu returns μ [Pa·s]
func (o Expo) Mu(T, rho float64) float64 {
	return o.mu0 * math.Exp(-(T-o.tc)/o.tv)
}

// DmuDT returns ∂μ/∂T
func (o Expo) DmuDT(T, rho float64) float64 {
	return -o.Mu(T, rho) / o.tv
}

// DmuDrho returns ∂μ/∂rho
func (o Expo) DmuDrho(T, rho float64) float64 {
	return 0
}
