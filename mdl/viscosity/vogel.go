// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Vogel implements the three-coefficient Vogel equation for the dynamic
// viscosity of liquids
//   μ(T) = 1e-3・exp(A + B/(C + T))   thus   ∂μ/∂T = -μ・B/(C + T)²
// Named coefficient sets (selected by the "fluid" parameter):
//   water: A=-3.7188,  B=578.919, C=-137.546
//   co2:   A=-24.0592, B=28535.2, C=1037.41
//   ch4:   A=-25.5947, B=25392.0, C=969.306
type Vogel struct {
	a, b, c float64 // coefficients; A dimensionless, B and C in [K]
}

// add model to factory
func init() {
	allocators["vogel"] = func() Model { return new(Vogel) }
}

// Init initialises this structure. The "fluid" parameter selects a named
// coefficient set via its Extra field; explicit A, B and C override it
func (o *Vogel) Init(prms utl.Params) error {
	for _, p := range prms {
		switch p.N {
		case "fluid":
			switch p.Extra {
			case "water":
				o.a, o.b, o.c = -3.7188, 578.919, -137.546
			case "co2":
				o.a, o.b, o.c = -24.0592, 28535.2, 1037.41
			case "ch4":
				o.a, o.b, o.c = -25.5947, 25392.0, 969.306
			default:
				return chk.Err("vogel: fluid named %q is incorrect", p.Extra)
			}
		case "A":
			o.a = p.V
		case "B":
			o.b = p.V
		case "C":
			o.c = p.V
		default:
			return chk.Err("vogel: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters. The example set is liquid water
func (o Vogel) GetPrms(example bool) utl.Params {
	if example {
		return utl.Params{
			&utl.P{N: "fluid", Extra: "water"},
		}
	}
	return utl.Params{
		&utl.P{N: "A", V: o.a},
		&utl.P{N: "B", V: o.b},
		&utl.P{N: "C", V: o.c},
	}
}

// Mu returns μ [Pa·s]
func (o Vogel) Mu(T, rho float64) float64 {
	return 1e-3 * math.Exp(o.a+o.b/(o.c+T))
}

// DmuDT returns ∂μ/∂T
func (o Vogel) DmuDT(T, rho float64) float64 {
	d := o.c + T
	return -o.Mu(T, rho) * o.b / (d * d)
}

// DmuDrho returns ∂μ/∂rho
func (o Vogel) DmuDrho(T, rho float64) float64 {
	return 0
}
