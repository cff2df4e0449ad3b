package icd

import "github.com/gofhir/icd/data"

// Source supplies the raw text of a subset's catalog data. The bundled
// data package is used unless a custom Source is configured with
// WithSource.
type Source interface {
	SubsetText(subset Subset) (string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(subset Subset) (string, error)

// SubsetText calls f.
func (f SourceFunc) SubsetText(subset Subset) (string, error) {
	return f(subset)
}

// Option configures Load.
type Option func(*Options)

// Options holds all configuration for building an Index.
type Options struct {
	// Source supplies raw subset text. Defaults to the bundled data
	// files.
	Source Source

	// SearchCacheSize is the capacity of the LRU cache of Search
	// results. Zero disables caching.
	SearchCacheSize int

	// Rand, when set, replaces the process-wide random generator for
	// Samples. Intended for tests; no seeding contract is promised
	// otherwise.
	Rand randSource
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Source:          SourceFunc(bundledText),
		SearchCacheSize: 256,
	}
}

// bundledText reads a subset's source from the embedded data files.
func bundledText(subset Subset) (string, error) {
	cfg, ok := subsetConfigs[subset]
	if !ok {
		return "", ErrUnknownSubset
	}
	return data.Text(cfg.DataFile)
}

// WithSource replaces the bundled catalog data with a custom source.
// A nil source is ignored.
func WithSource(source Source) Option {
	return func(o *Options) {
		if source != nil {
			o.Source = source
		}
	}
}

// WithSearchCache sets the capacity of the Search result cache. Zero
// disables the cache; negative values are ignored.
func WithSearchCache(capacity int) Option {
	return func(o *Options) {
		if capacity >= 0 {
			o.SearchCacheSize = capacity
		}
	}
}

// WithRand sets the random generator used by Samples, typically a
// *rand.Rand with a fixed seed in tests.
func WithRand(r randSource) Option {
	return func(o *Options) {
		o.Rand = r
	}
}
