package render

var (
	Red          = [4]float32{1, 0, 0, 1}
	Green        = [4]float32{0, 1, 0, 1}
	Blue         = [4]float32{0, 0, 1, 1}
	Purple       = [4]float32{1, 0, 1, 1}
	Yellow       = [4]float32{1, 1, 0, 1}
	DarkGreen    = [4]float32{0.05, 0.24, 0.06, 1}
	DullRed      = [4]float32{0.59, 0.25, 0.25, 1}
	Grey         = [4]float32{0.5, 0.5, 0.5, 1}
	DarkGrey     = [4]float32{0.3, 0.3, 0.3, 1}
	VeryDarkGrey = [4]float32{0.1, 0.1, 0.1, 1}
	Cyan         = [4]float32{0, 0.8, 0.8, 1}
	Transparent  = [4]float32{}
)

// RGB turns a wire color into an opaque fill.
func RGB(c [3]float32) [4]float32 { return [4]float32{c[0], c[1], c[2], 1} }

// Shade scales the color channels of c by f and sets its alpha to a.
func Shade(c [3]float32, f, a float32) [4]float32 {
	return [4]float32{c[0] * f, c[1] * f, c[2] * f, a}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c [4]float32, a float32) [4]float32 {
	c[3] = a
	return c
}
