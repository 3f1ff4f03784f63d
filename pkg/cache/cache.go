// Package cache provides byte-level caching for rendered chart artifacts.
//
// Layout and rendering are cheap but not free, and the HTTP server may see
// the same tree repeatedly (dashboards poll). The cache stores finished
// artifacts (SVG or JSON bytes) keyed by a hash of the source tree and the
// render options, so a repeated request is a single lookup.
//
// Backends:
//   - [FileCache]: directory-backed, for the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
//
// Keys are produced by a [Keyer] so every entry point hashes options the
// same way.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for artifact cache backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RenderKeyInputs are the inputs that determine a rendered artifact's bytes.
// TreeHash is the SHA-256 of the canonical tree JSON; every other field is a
// render option whose change must produce a different key.
type RenderKeyInputs struct {
	TreeHash        string
	Format          string
	Style           string
	Width           float64
	Height          float64
	Radius          float64
	Levels          int
	Labels          bool
	SplitFullCircle bool
}

// Keyer builds cache keys from render inputs.
type Keyer interface {
	// RenderKey returns the key for a rendered artifact.
	RenderKey(in RenderKeyInputs) string
}

// DefaultKeyer hashes all inputs into an opaque prefixed key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(in RenderKeyInputs) string {
	return hashKey("render",
		in.TreeHash, in.Format, in.Style,
		in.Width, in.Height, in.Radius, in.Levels,
		in.Labels, in.SplitFullCircle)
}
