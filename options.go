package scan

import "log/slog"

// Option configures a Rasterizer during creation.
//
// Example:
//
//	// Default: supersampled anti-aliasing, 0.1px curve tolerance
//	r := scan.NewRasterizer()
//
//	// Exact-area anti-aliasing with round hairline caps
//	r := scan.NewRasterizer(scan.WithAAMode(scan.AAAnalytic), scan.WithHairCap(scan.CapRound))
type Option func(*Config)

// Config holds the settings threaded through every rasterizer entry point.
// It replaces process-wide switches: two Rasterizers with different
// settings can run side by side.
type Config struct {
	// AAMode selects the anti-aliased path fill engine.
	AAMode AAMode

	// Tolerance is the maximum distance, in pixels, between a curve and
	// the polyline that replaces it. Non-positive values select 0.1.
	Tolerance float64

	// HairCap is the end cap applied to open contours by HairPath and
	// AntiHairPath.
	HairCap LineCap

	// Logger receives debug records for this Rasterizer. Nil means the
	// package logger.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		AAMode:    AASupersample,
		Tolerance: defaultTolerance,
		HairCap:   CapButt,
	}
}

const defaultTolerance = 0.1

// WithAAMode selects the anti-aliased fill engine.
func WithAAMode(m AAMode) Option {
	return func(c *Config) {
		c.AAMode = m
	}
}

// WithTolerance sets the curve flattening tolerance in pixels.
func WithTolerance(tol float64) Option {
	return func(c *Config) {
		if tol > 0 {
			c.Tolerance = tol
		}
	}
}

// WithHairCap sets the end cap for hairline paths.
func WithHairCap(lc LineCap) Option {
	return func(c *Config) {
		c.HairCap = lc
	}
}

// WithLogger scopes a logger to one Rasterizer instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return Logger()
}
