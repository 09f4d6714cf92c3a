package geometry

// Complex is a point in the complex plane, Real + Imag*i.
type Complex struct {
	Real, Imag float64
}

// Squared returns z*z = (a² - b²) + 2ab·i.
// Both parts are computed from the receiver before anything is written.
func (z Complex) Squared() Complex {
	return Complex{
		Real: z.Real*z.Real - z.Imag*z.Imag,
		Imag: 2.0 * z.Real * z.Imag,
	}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{Real: z.Real + w.Real, Imag: z.Imag + w.Imag}
}

// MagnitudeSquared is |z|², used in place of |z| to skip the square root.
func (z Complex) MagnitudeSquared() float64 {
	return z.Real*z.Real + z.Imag*z.Imag
}
