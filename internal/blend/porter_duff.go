package blend

// BlendMode is a Porter-Duff operator restricted to coverage (alpha-only)
// values. The clip combiner maps each region operation to one of these.
type BlendMode uint8

const (
	BlendModulate   BlendMode = iota // Result: S*D (intersect)
	BlendSourceOver                  // Result: S + D - S*D (union)
	BlendSourceOut                   // Result: S*(1-D) (difference)
	BlendXor                         // Result: S + D - 2*S*D (xor)
)

// BlendFunc combines a source and destination coverage.
type BlendFunc func(s, d uint8) uint8

// GetBlendFunc returns the coverage function for the given mode.
// Returns blendModulate for unknown modes.
func GetBlendFunc(mode BlendMode) BlendFunc {
	switch mode {
	case BlendSourceOver:
		return blendSourceOver
	case BlendSourceOut:
		return blendSourceOut
	case BlendXor:
		return blendXor
	default:
		return blendModulate
	}
}

// String returns the mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendModulate:
		return "Modulate"
	case BlendSourceOver:
		return "SourceOver"
	case BlendSourceOut:
		return "SourceOut"
	case BlendXor:
		return "Xor"
	default:
		return "Unknown"
	}
}

func blendModulate(s, d uint8) uint8 {
	return MulDiv255Round(s, d)
}

func blendSourceOver(s, d uint8) uint8 {
	return s + d - MulDiv255Round(s, d)
}

func blendSourceOut(s, d uint8) uint8 {
	return MulDiv255Round(s, 255-d)
}

func blendXor(s, d uint8) uint8 {
	return s + d - 2*MulDiv255Round(s, d)
}
