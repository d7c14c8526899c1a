package kernels

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gramkit/gram"
)

// Internal panic messages (no magic strings).
const (
	panicBandwidth = "kernels: RBF: bandwidth must be positive and finite"
	panicScale     = "kernels: Laplacian: scale must be positive and finite"
	panicDegree    = "kernels: Polynomial: degree must be at least 1"
	panicGamma     = "kernels: Polynomial: gamma must be positive and finite"
)

// Linear returns the linear kernel ⟨a, b⟩.
func Linear() gram.Evaluator[[]float64] {
	return func(a, b []float64) float64 {
		return floats.Dot(a, b)
	}
}

// RBF returns the Gaussian radial basis function kernel with bandwidth
// sigma: exp(-‖a-b‖² / (2σ²)). Panics when sigma is not positive finite.
func RBF(sigma float64) gram.Evaluator[[]float64] {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		panic(panicBandwidth)
	}
	denom := 2 * sigma * sigma

	return func(a, b []float64) float64 {
		d := floats.Distance(a, b, 2)
		return math.Exp(-d * d / denom)
	}
}

// Laplacian returns the Laplacian kernel exp(-γ·‖a-b‖₁). Panics when
// gamma is not positive finite.
func Laplacian(gamma float64) gram.Evaluator[[]float64] {
	if !(gamma > 0) || math.IsInf(gamma, 1) {
		panic(panicScale)
	}

	return func(a, b []float64) float64 {
		return math.Exp(-gamma * floats.Distance(a, b, 1))
	}
}

// Polynomial returns the polynomial kernel (γ·⟨a,b⟩ + coef)ᵈ. Panics when
// degree < 1 or gamma is not positive finite (γ = 0 would collapse the
// kernel to the constant coefᵈ).
func Polynomial(degree int, gamma, coef float64) gram.Evaluator[[]float64] {
	if degree < 1 {
		panic(panicDegree)
	}
	if !(gamma > 0) || math.IsInf(gamma, 1) {
		panic(panicGamma)
	}

	return func(a, b []float64) float64 {
		return math.Pow(gamma*floats.Dot(a, b)+coef, float64(degree))
	}
}
