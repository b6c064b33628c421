package core

// Properties of air at 0 °C. At 20 °C the values would be ρ = 1.204 and
// c = 343.2; the 0 °C pair is the reference the model is calibrated on.
const (
	// Rho is the density of air in kg/m³.
	Rho = 1.293

	// C is the speed of sound in m/s.
	C = 331.5
)

// Compliance converts an equivalent air volume in m³ into an acoustic
// compliance in m⁵/N: volume / (ρ·c²).
func Compliance(volume float64) float64 {
	return volume / (Rho * C * C)
}
