// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/guptarohit/asciigraph"
)

// Plot prints terminal graphs of μ(T) and, if deriv is true, ∂μ/∂T at fixed
// density rho
func Plot(o Model, Tmin, Tmax, rho float64, np int, deriv bool) {
	X := utl.LinSpace(Tmin, Tmax, np)
	Y := make([]float64, np)
	var Z []float64
	if deriv {
		Z = make([]float64, np)
	}
	for i := 0; i < np; i++ {
		Y[i] = o.Mu(X[i], rho)
		if deriv {
			Z[i] = o.DmuDT(X[i], rho)
		}
	}
	graph := asciigraph.Plot(Y,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(io.Sf("mu(T) [Pa·s] for T in [%g,%g] K at rho=%g kg/m³", Tmin, Tmax, rho)),
	)
	io.Pf("%s\n\n", graph)
	if deriv {
		graph = asciigraph.Plot(Z,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(io.Sf("dmu/dT(T) [Pa·s/K] for T in [%g,%g] K at rho=%g kg/m³", Tmin, Tmax, rho)),
		)
		io.Pf("%s\n\n", graph)
	}
}
