// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// codecs.go — the Registry: normalized-name → CodecInfo resolution with
// alias indirection, lazy module loading, descriptor validation, and a
// process-lifetime memo of both positive and negative results.

// Package codecs provides a character-encoding registry: it normalizes
// encoding names, resolves aliases, lazily loads the implementing codec
// module, validates its descriptor, and memoizes the result for the life of
// the process.
//
// Built-in encodings live in the stdcodecs subpackage and register
// themselves on import:
//
//	import (
//		"github.com/AndrewDonelson/codecs"
//		_ "github.com/AndrewDonelson/codecs/stdcodecs"
//	)
//
//	raw, err := codecs.Encode("latin-1", "déjà vu")
package codecs

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/AndrewDonelson/codecs/internal/cache"
	"github.com/AndrewDonelson/codecs/internal/clock"
	"github.com/AndrewDonelson/codecs/internal/metrics"
)

// Re-export types so callers only import this package.
type Clock = clock.Clock
type MetricsRecorder = metrics.Recorder

// SearchFunc answers "which codec implements this name?". It receives the
// already-normalized name. Returning (nil, nil) passes the question to the
// next function in the registry's search chain; a non-nil error aborts the
// lookup.
type SearchFunc func(name string) (*CodecInfo, error)

// CodePageFunc reports the active ANSI code page of the host. Used only by
// the "mbcs" fallback search function.
type CodePageFunc func() (uint32, error)

// ────────────────────────────────────────────────────────────────────────────
// Config
// ────────────────────────────────────────────────────────────────────────────

// Config contains all Registry configuration. The zero value selects the
// process-wide defaults: the DefaultNamespace loader, the built-in alias
// table, and the platform code-page strategy.
type Config struct {
	// Loader resolves qualified module paths to modules.
	Loader Loader

	// Aliases maps normalized alias → canonical module name. Read-only
	// after construction.
	Aliases map[string]string

	// CodePage supplies the active ANSI code page for the "mbcs" fallback.
	// Leaving it nil selects the platform strategy: GetACP on Windows, no
	// fallback elsewhere.
	CodePage CodePageFunc

	// Optional overrideable components
	Clock   Clock
	Metrics MetricsRecorder
	Logger  Logger
}

func (c *Config) defaults() {
	if c.Loader == nil {
		c.Loader = DefaultNamespace
	}
	if c.Aliases == nil {
		c.Aliases = defaultAliases
	}
	if c.CodePage == nil {
		c.CodePage = activeCodePage
	}
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Registry
// ────────────────────────────────────────────────────────────────────────────

// unknownEncoding is the negative sentinel memoized for names that resolved
// to no module at all.
type unknownEncoding struct{}

// Registry is the main entry-point for the codecs library. It owns the
// descriptor memo and the ordered chain of search functions consulted by
// Lookup, its own resolver first.
type Registry struct {
	cfg     Config
	cache   *cache.Store
	metrics MetricsRecorder
	logger  Logger

	mu     sync.RWMutex
	search []SearchFunc

	lookups atomic.Int64
}

// NewRegistry creates a Registry from the provided Config. The registry's
// own resolver is the first search function; when a code-page strategy is
// available the "mbcs" fallback is appended after it.
func NewRegistry(cfg Config) *Registry {
	cfg.defaults()

	r := &Registry{
		cfg:     cfg,
		cache:   cache.New(),
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
	r.search = append(r.search, r.resolve)
	if cfg.CodePage != nil {
		r.search = append(r.search, r.codePageFallback)
	}
	return r
}

// RegisterSearch appends fn to the registry's search chain. Registration
// order determines search priority; the registry's own resolver always runs
// first.
func (r *Registry) RegisterSearch(fn SearchFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.search = append(r.search, fn)
	r.mu.Unlock()
}

// Lookup maps an encoding name to its validated CodecInfo. The name is
// normalized first, so "UTF-8", "utf_8" and "utf 8" all resolve to the same
// descriptor, pointer-identical across calls. Unresolvable names fail with
// ErrUnknownEncoding; modules that load but cannot register fail with
// ErrIncompatibleCodec.
func (r *Registry) Lookup(name string) (*CodecInfo, error) {
	r.lookups.Add(1)
	normalized := NormalizeEncoding(name)

	r.mu.RLock()
	chain := r.search
	r.mu.RUnlock()

	for _, fn := range chain {
		info, err := fn(normalized)
		if err != nil {
			return nil, err
		}
		if info != nil {
			return info, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// resolve is the primary search function: memo lookup, alias indirection,
// lazy module load, descriptor validation, alias registration.
func (r *Registry) resolve(name string) (*CodecInfo, error) {
	if v, ok := r.cache.Get(name); ok {
		r.metrics.RecordHit(name)
		if _, negative := v.(unknownEncoding); negative {
			return nil, nil
		}
		return v.(*CodecInfo), nil
	}
	r.metrics.RecordMiss(name)

	// Ordered candidates: the name itself, then its alias target. Empty
	// names and names containing the module-path separator never reach the
	// loader.
	candidates := make([]string, 0, 2)
	candidates = append(candidates, name)
	if target, ok := r.cfg.Aliases[name]; ok && target != name {
		candidates = append(candidates, target)
	}

	var mod *Module
	start := r.cfg.Clock.Now()
	for _, cand := range candidates {
		if cand == "" || strings.Contains(cand, modSeparator) {
			continue
		}
		m, err := r.cfg.Loader.Load(ModulePrefix + cand)
		if err == nil {
			mod = m
			break
		}
		if !isNotFound(err) {
			r.metrics.RecordError("load")
			return nil, err
		}
		r.logger.Debug("codec module not found", "path", ModulePrefix+cand)
	}
	r.metrics.RecordLoadLatency(name, r.cfg.Clock.Now().Sub(start))

	if mod == nil {
		// Stable negative result: one load attempt per name, total.
		r.cache.SetIfAbsent(name, unknownEncoding{})
		return nil, nil
	}

	// A loaded module with a missing or malformed registry entry is a
	// transient condition and is deliberately not memoized, so a module
	// corrected through Namespace.Replace resolves on the next lookup.
	if mod.RegEntry == nil {
		r.metrics.RecordError("regentry")
		return nil, fmt.Errorf("%w: module %s has no registry entry", ErrIncompatibleCodec, mod.Path)
	}
	info, err := mod.RegEntry()
	if err != nil {
		r.metrics.RecordError("regentry")
		return nil, fmt.Errorf("%w: module %s: %v", ErrIncompatibleCodec, mod.Path, err)
	}
	if err := info.validate(mod.Path); err != nil {
		r.metrics.RecordError("validate")
		return nil, err
	}

	// The descriptor is memoized under the module's own name first, so every
	// spelling that resolves to this module converges on one instance. The
	// canonical slot may already hold the negative sentinel when the module
	// was installed after a failed direct lookup; the new descriptor wins for
	// this and future alias resolutions, while the negative entry itself
	// stays stable.
	canonical := strings.TrimPrefix(mod.Path, ModulePrefix)
	stored, _ := r.cache.SetIfAbsent(canonical, info)
	won, ok := stored.(*CodecInfo)
	if !ok {
		won = info
	}
	if name != canonical {
		r.cache.SetIfAbsent(name, won)
	}

	// Register the module's declared aliases against the same descriptor
	// so future lookups by alias skip the load step.
	for _, alias := range mod.Aliases {
		a := NormalizeEncoding(alias)
		if a == "" || a == name {
			continue
		}
		r.cache.SetIfAbsent(a, won)
	}

	r.logger.Debug("codec registered", "name", name, "module", mod.Path)
	return won, nil
}

// codePageFallback resolves the literal name "mbcs" through the host's
// active ANSI code page. Appended to the search chain only when a code-page
// strategy exists, so it runs after the primary resolver has failed.
func (r *Registry) codePageFallback(name string) (*CodecInfo, error) {
	if name != "mbcs" {
		return nil, nil
	}
	cp, err := r.cfg.CodePage()
	if err != nil {
		r.logger.Warn("active code page query failed", "error", err)
		return nil, nil
	}
	return r.resolve(fmt.Sprintf("cp%d", cp))
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrModuleNotFound)
}

// ────────────────────────────────────────────────────────────────────────────
// Stats
// ────────────────────────────────────────────────────────────────────────────

// Stats is the snapshot returned by Registry.Stats().
type Stats struct {
	Lookups      int64
	CacheHits    int64
	CacheMisses  int64
	CacheEntries int64
}

// Stats returns current registry statistics.
func (r *Registry) Stats() Stats {
	cs := r.cache.Stats()
	return Stats{
		Lookups:      r.lookups.Load(),
		CacheHits:    cs.Hits,
		CacheMisses:  cs.Misses,
		CacheEntries: cs.Entries,
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Default registry
// ────────────────────────────────────────────────────────────────────────────

// defaultRegistry is the process-wide singleton behind the package-level
// entry points, constructed on first use.
var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(Config{})
})

// Default returns the process-wide Registry used by the package-level
// functions.
func Default() *Registry { return defaultRegistry() }

// Lookup resolves name through the default Registry.
func Lookup(name string) (*CodecInfo, error) { return Default().Lookup(name) }

// RegisterSearch appends fn to the default Registry's search chain.
func RegisterSearch(fn SearchFunc) { Default().RegisterSearch(fn) }
