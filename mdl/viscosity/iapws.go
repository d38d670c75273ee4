// Copyright 2017 The Ogs5 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// WaterIAPWS implements the industrial correlation for the dynamic viscosity of
// ordinary water substance
//   μ(T,ρ) = μ0(barT)・exp(barRho・f1(barT,barRho))・μref
// with barT = T/Tref and barRho = ρ/Rref, the dilute-gas factor
//   μ0 = 100・√barT / Σ_{i<4} Hi[i]/barT^i
// and the dense-fluid exponent f1 given by a double series in powers of
// (1/barT - 1) and (barRho - 1). The critical enhancement is not included.
//  Note:
//   inputs must satisfy T > 0; for T ≤ 0 the result is NaN or Inf (no panic)
//  Reference:
//   [1] IAPWS (2008) Release on the IAPWS Formulation 2008 for the Viscosity of
//       Ordinary Water Substance, http://www.iapws.org
type WaterIAPWS struct {
}

// reference constants of [1]
const (
	waterTref  = 647.096 // reference temperature [K]
	waterRref  = 322.0   // reference density [kg/m³]
	waterMuref = 1.0e-6  // reference viscosity [Pa·s]
)

// waterHi holds the coefficients of the dilute-gas series
var waterHi = [4]float64{1.67752, 2.20462, 0.6366564, -0.241605}

// waterHij holds the coefficients of the dense-fluid series. Rows follow powers
// of (1/barT - 1) and columns powers of (barRho - 1); entries absent from the
// release table are exactly zero
var waterHij = [6][7]float64{
	{0.520094, 0.222531, -0.281378, 0.161913, -0.0325372, 0, 0},
	{0.0850895, 0.999115, -0.906851, 0.257399, 0, 0, 0},
	{-1.08374, 1.88797, -0.772479, 0, 0, 0, 0},
	{-0.289555, 1.26613, -0.489837, 0, 0.0698452, 0, -0.00435673},
	{0, 0, -0.25704, 0, 0, 0.00872102, 0},
	{0, 0.120573, 0, 0, 0, 0, -0.000593264},
}

// add model to factory
func init() {
	allocators["iapws"] = func() Model { return new(WaterIAPWS) }
}

// Init initialises this structure. The correlation carries fixed physical
// constants and accepts no parameters
func (o *WaterIAPWS) Init(prms utl.Params) error {
	for _, p := range prms {
		return chk.Err("iapws: parameter named %q is incorrect", p.N)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o WaterIAPWS) GetPrms(example bool) utl.Params {
	return nil
}

// Mu returns μ [Pa·s]
func (o WaterIAPWS) Mu(T, rho float64) float64 {
	barT := T / waterTref
	barRho := rho / waterRref
	mu0 := 100.0 * math.Sqrt(barT) / waterMu0factor(barT)
	sT := waterSeriesT(barT)
	sR := waterSeriesRho(barRho)
	mu1 := math.Exp(barRho * waterMu1factor(&sT, &sR))
	return mu0 * mu1 * waterMuref
}

// DmuDT returns ∂μ/∂T [Pa·s/K]
func (o WaterIAPWS) DmuDT(T, rho float64) float64 {
	barT := T / waterTref
	barRho := rho / waterRref
	return waterMuref * waterDbarMuDbarT(barT, barRho) / waterTref
}

// DmuDrho returns ∂μ/∂rho [Pa·s·m³/kg]
func (o WaterIAPWS) DmuDrho(T, rho float64) float64 {
	barT := T / waterTref
	barRho := rho / waterRref
	return waterMuref * waterDbarMuDbarRho(barT, barRho) / waterRref
}

// waterMu0factor computes the denominator series of the dilute-gas factor
func waterMu0factor(barT float64) (sum float64) {
	barTi := 1.0
	for i := 0; i < 4; i++ {
		sum += waterHi[i] / barTi
		barTi *= barT
	}
	return
}

// waterSeriesT computes successive powers of (1/barT - 1)
func waterSeriesT(barT float64) (s [6]float64) {
	s[0] = 1.0
	fac := 1.0/barT - 1.0
	for i := 1; i < 6; i++ {
		s[i] = s[i-1] * fac
	}
	return
}

// waterSeriesRho computes successive powers of (barRho - 1)
func waterSeriesRho(barRho float64) (s [7]float64) {
	s[0] = 1.0
	for i := 1; i < 7; i++ {
		s[i] = s[i-1] * (barRho - 1.0)
	}
	return
}

// waterMu1factor computes the exponent of the dense-fluid factor
func waterMu1factor(sT *[6]float64, sR *[7]float64) (sum float64) {
	for i := 0; i < 6; i++ {
		sumj := 0.0
		for j := 0; j < 7; j++ {
			sumj += waterHij[i][j] * sR[j]
		}
		sum += sT[i] * sumj
	}
	return
}

// waterDbarMuDbarT computes ∂(μ/μref)/∂barT
func waterDbarMuDbarT(barT, barRho float64) float64 {

	// dilute-gas part: quotient rule on 100・√barT / factor
	factor := waterMu0factor(barT)
	sqrtBarT := math.Sqrt(barT)
	dfactor := 0.0
	barTi := barT * barT
	for i := 1; i < 4; i++ {
		dfactor -= float64(i) * waterHi[i] / barTi
		barTi *= barT
	}
	dmu0 := 50.0/(factor*sqrtBarT) - 100.0*sqrtBarT*dfactor/(factor*factor)

	// dense-fluid part: chain rule through d(1/barT)/dbarT = -1/barT²
	sT := waterSeriesT(barT)
	sR := waterSeriesRho(barRho)
	dfactor1 := 0.0
	for i := 1; i < 6; i++ {
		sumj := 0.0
		for j := 0; j < 7; j++ {
			sumj += waterHij[i][j] * sR[j]
		}
		dfactor1 -= float64(i) * sT[i-1] * sumj / (barT * barT)
	}

	factor1 := waterMu1factor(&sT, &sR)
	dmu1 := barRho * math.Exp(barRho*factor1) * dfactor1
	return dmu0*math.Exp(barRho*factor1) + dmu1*100.0*sqrtBarT/factor
}

// waterDbarMuDbarRho computes ∂(μ/μref)/∂barRho
func waterDbarMuDbarRho(barT, barRho float64) float64 {
	sT := waterSeriesT(barT)
	sR := waterSeriesRho(barRho)
	dfactor1 := 0.0
	for i := 0; i < 6; i++ {
		sumj := 0.0
		for j := 1; j < 7; j++ {
			sumj += float64(j) * waterHij[i][j] * sR[j-1]
		}
		dfactor1 += sT[i] * sumj
	}
	mu0 := 100.0 * math.Sqrt(barT) / waterMu0factor(barT)
	factor1 := waterMu1factor(&sT, &sR)
	return mu0 * math.Exp(barRho*factor1) * (factor1 + barRho*dfactor1)
}
