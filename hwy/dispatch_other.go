package hwy

func init() {
	// The engine never links against architecture-specific SIMD backends:
	// DP cell lanes are emulated in software (a Go slice per lane), so one
	// dispatch level serves every GOARCH.
	currentLevel = DispatchScalar
	currentWidth = 16 // 16-byte vectors keep lane counts consistent across element sizes.
	currentName = "scalar"
}
