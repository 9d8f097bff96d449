// Package cache stores rendered preview artifacts.
//
// Layouts are cheap to compute but PNG rasterization of large sheets is not,
// and the preview server renders the same request over and over while a
// user tweaks one field. Artifacts are keyed by a hash of everything that
// affects their bytes: see [DefaultKeyer.ArtifactKey].
//
// Three implementations are provided:
//   - [NullCache] never stores anything (the default for one-shot CLI runs)
//   - [FileCache] persists entries under a directory, for repeated CLI renders
//   - [MemoryCache] keeps a bounded set of entries in process, for the server
package cache

import (
	"context"
	"time"
)

// TTLArtifact is the lifetime of a rendered artifact.
const TTLArtifact = 24 * time.Hour

// Cache is a byte store with expiring entries. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(resultHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Orientation string  `json:"orientation"`
	Unit        string  `json:"unit"`
	Scale       float64 `json:"scale"`
	Seed        int64   `json:"seed"`
	ShowMargin  bool    `json:"show_margin"`
	ShowLabels  bool    `json:"show_labels"`
}

// DefaultKeyer hashes key parts with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<hash>" for a result hash and render settings.
func (DefaultKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", resultHash, opts)
}
