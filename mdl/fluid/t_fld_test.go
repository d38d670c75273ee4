// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01. slightly compressible liquid")

	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	water := mdl.(*Linear)

	// column solution: at the top, (R0,P0) is recovered; at the bottom, the
	// pressure exceeds the incompressible value R0・g・H by the compressibility
	pTop, Rtop := water.Calc(water.H)
	chk.Float64(tst, "p(H)", 1e-17, pTop, water.P0)
	chk.Float64(tst, "ρ(H)", 1e-17, Rtop, water.R0)
	pBot, Rbot := water.Calc(0)
	pLin := water.R0 * water.Grav * water.H
	if pBot <= pLin {
		tst.Errorf("p(0)=%v must exceed the incompressible value %v\n", pBot, pLin)
		return
	}
	chk.Float64(tst, "p(0)", 10.0, pBot, pLin)
	chk.Float64(tst, "ρ(0)", 1e-14, Rbot, mdl.Rho(pBot, 0))

	// derivatives
	for _, p := range utl.LinSpace(0, 1e6, 5) {
		dana := mdl.DrhoDp(p, 293.15)
		chk.DerivScaSca(tst, "∂ρ/∂p", 1e-8, dana, p, 1e-2, chk.Verbose, func(x float64) float64 {
			return mdl.Rho(x, 293.15)
		})
	}
	chk.Float64(tst, "∂ρ/∂T", 1e-17, mdl.DrhoDT(1e5, 293.15), 0)
}

func Test_fld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld02. ideal gas")

	mdl, err := New("idealgas")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// dry air at atmospheric pressure and 20 °C
	p, T := 101325.0, 293.15
	if chk.Verbose {
		io.Pf("ρ(air) = %v\n", mdl.Rho(p, T))
	}
	chk.Float64(tst, "ρ(air)", 1e-4, mdl.Rho(p, T), 1.2041)

	// derivatives
	dana := mdl.DrhoDp(p, T)
	chk.DerivScaSca(tst, "∂ρ/∂p", 1e-10, dana, p, 1e-2, chk.Verbose, func(x float64) float64 {
		return mdl.Rho(x, T)
	})
	dana = mdl.DrhoDT(p, T)
	chk.DerivScaSca(tst, "∂ρ/∂T", 1e-8, dana, T, 1e-3, chk.Verbose, func(x float64) float64 {
		return mdl.Rho(p, x)
	})

	// molar mass must be positive
	bad := new(IdealGas)
	err = bad.Init(nil)
	if err == nil {
		tst.Errorf("Init must fail with M ≤ 0\n")
		return
	}
}

func Test_fld03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld03. allocation and parameter errors")

	_, err := New("unknown")
	if err == nil {
		tst.Errorf("New must fail with an unknown model name\n")
		return
	}
	for _, name := range []string{"lin", "idealgas"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			return
		}
		err = mdl.Init(utl.Params{&utl.P{N: "wrongparameter", V: 0}})
		if err == nil {
			tst.Errorf("Init of %q must fail with an unknown parameter\n", name)
			return
		}
	}
}
