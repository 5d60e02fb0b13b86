package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// to [-1, 1] first. Positive full scale maps to 32767 to avoid
// overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32
// in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
