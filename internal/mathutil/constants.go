package mathutil

// Constants for the factorial-ratio approximation.
// The Stirling coefficients are the first terms of the asymptotic expansion
// of the factorial, l! ≈ √(2πl) (l/e)^l A(l), from Abramowitz & Stegun,
// "Handbook of Mathematical Functions" (eq. 6.1.37).

const (
	// Threshold on m·log10(x) for switching between the direct formula
	// and Stirling's approximation in ExpXmOverFactorial.
	// Below it, x^m stays far from the float64 overflow region.
	directFormulaThreshold = 50.0

	// MaxFactorial is the size of the precomputed inverse-factorial table.
	// 99! ≈ 9.3e157 still fits in a float64; m beyond the table is handled
	// by the Stirling branch instead.
	MaxFactorial = 100
)

// Stirling correction series A(m) = 1 + c1/m + c2/m² + c3/m³ + c4/m⁴.
const (
	stirlingCoeff1 = 1.0 / 12.0
	stirlingCoeff2 = 1.0 / 288.0
	stirlingCoeff3 = -139.0 / 51840.0
	stirlingCoeff4 = -571.0 / 2488320.0
)

// Precision is the number of reliable decimal digits in a float64.
// Series truncation rules compare relative term magnitudes against it.
const Precision = 15
