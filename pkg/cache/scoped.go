package cache

// ScopedKeyer wraps a Keyer with a prefix so caches shared across builds or
// processes keep separate namespaces. The CLI scopes its on-disk cache by
// release, so an upgraded renderer never serves artifacts drawn by the old
// one:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v0.3.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(resultHash, opts)
}
