// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Linear implements a slightly compressible liquid
//   ρ(p) = R0 + C・(p - P0)   thus   ∂ρ/∂p = C
// The model also solves the pressure and density along a column with gravity,
// with (R0,P0) known at elevation H
type Linear struct {

	// material data
	R0 float64 // intrinsic density corresponding to P0 [kg/m³]
	P0 float64 // pressure corresponding to R0 [Pa]
	C  float64 // compressibility coefficient [kg/(m³·Pa)]

	// additional data
	H    float64 // elevation where (R0,P0) is known [m]
	Grav float64 // gravity acceleration (positive constant) [m/s²]
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Linear) }
}

// Init initialises this structure
func (o *Linear) Init(prms utl.Params) error {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "H":
			o.H = p.V
		case "grav":
			o.Grav = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters. The example set is liquid water
func (o Linear) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "R0", V: 1000.0},  // [kg/m³]
			&utl.P{N: "P0", V: 0.0},     // [Pa]
			&utl.P{N: "C", V: 4.53e-7},  // [kg/(m³·Pa)]
			&utl.P{N: "H", V: 10.0},     // [m]
			&utl.P{N: "grav", V: 10.0},  // [m/s²]
		}
	}
	return utl.Params{
		&utl.P{N: "R0", V: o.R0},
		&utl.P{N: "P0", V: o.P0},
		&utl.P{N: "C", V: o.C},
		&utl.P{N: "H", V: o.H},
		&utl.P{N: "grav", V: o.Grav},
	}
}

// Rho returns ρ [kg/m³]
func (o Linear) Rho(p, T float64) float64 {
	return o.R0 + o.C*(p-o.P0)
}

// DrhoDp returns ∂ρ/∂p
func (o Linear) DrhoDp(p, T float64) float64 {
	return o.C
}

// DrhoDT returns ∂ρ/∂T
func (o Linear) DrhoDT(p, T float64) float64 {
	return 0
}

// Calc computes pressure and density at elevation z
func (o Linear) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}
