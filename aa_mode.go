package scan

// AAMode controls which algorithm computes anti-aliased path coverage.
//
// The mode is per-Rasterizer, not global. Both engines feed the blitter
// the same BlitAntiH row contract, so blitters and clips cannot tell them
// apart except by the coverage values.
type AAMode int

const (
	// AASupersample rasterizes on a grid four times finer in each
	// direction and accumulates 16 binary samples per pixel (default).
	AASupersample AAMode = iota

	// AAAnalytic computes the exact area of each pixel covered by the
	// path. It is slower per edge but has no sampling error.
	AAAnalytic
)

// String returns the mode name.
func (m AAMode) String() string {
	switch m {
	case AASupersample:
		return "Supersample"
	case AAAnalytic:
		return "Analytic"
	default:
		return "Unknown"
	}
}

// LineCap specifies how HairPath ends open contours.
type LineCap int

const (
	// CapButt ends the hairline exactly at its endpoint (default).
	CapButt LineCap = iota
	// CapRound extends each end by the area of a half-pixel half-disc.
	CapRound
	// CapSquare extends each end by half a pixel.
	CapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "Butt"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}
