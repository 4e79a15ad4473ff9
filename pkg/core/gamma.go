package core

// OutputScale maps a gamma encoded channel in [0,1] to an 8-bit value by truncation.
// 255.99 keeps 1.0 at 255 without rounding 0.998 up.
const OutputScale = 255.99

// GammaEncode applies gamma 2 correction (square root per channel) to a linear color
func GammaEncode(linear Vec3) Vec3 {
	return linear.Sqrt()
}

// GammaDecode inverts GammaEncode by squaring each channel
func GammaDecode(encoded Vec3) Vec3 {
	return encoded.Square()
}

// ToRGB8 clamps a gamma encoded color to [0,1] and quantizes it to 8-bit channels
func ToRGB8(encoded Vec3) (r, g, b uint8) {
	c := encoded.Clamp(0.0, 1.0)
	return uint8(c.X * OutputScale), uint8(c.Y * OutputScale), uint8(c.Z * OutputScale)
}
