// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Rgas is the universal gas constant [J/(mol·K)]
const Rgas = 8.3144621

// IdealGas implements the ideal gas law
//   ρ(p,T) = M・p / (R・T)
type IdealGas struct {
	m float64 // molar mass [kg/mol]
}

// add model to factory
func init() {
	allocators["idealgas"] = func() Model { return new(IdealGas) }
}

// Init initialises this structure
func (o *IdealGas) Init(prms utl.Params) error {
	for _, p := range prms {
		switch p.N {
		case "M":
			o.m = p.V
		default:
			return chk.Err("idealgas: parameter named %q is incorrect", p.N)
		}
	}
	if o.m <= 0 {
		return chk.Err("idealgas: molar mass M must be positive")
	}
	return nil
}

// GetPrms gets (an example) of parameters. The example set is dry air
func (o IdealGas) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "M", V: 0.028964}, // [kg/mol]
		}
	}
	return utl.Params{
		&utl.P{N: "M", V: o.m},
	}
}

// Rho returns ρ [kg/m³]
func (o IdealGas) Rho(p, T float64) float64 {
	return o.m * p / (Rgas * T)
}

// DrhoDp returns ∂ρ/∂p
func (o IdealGas) DrhoDp(p, T float64) float64 {
	return o.m / (Rgas * T)
}

// DrhoDT returns ∂ρ/∂T
func (o IdealGas) DrhoDT(p, T float64) float64 {
	return -o.m * p / (Rgas * T * T)
}
