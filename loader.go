// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// loader.go — the Loader capability the registry resolves modules through,
// and Namespace, the process-wide registration table backing the default
// loader. Codec packages register themselves here from init, the way
// database/sql drivers do.

package codecs

import (
	"fmt"
	"sync"
)

// ModulePrefix is the namespace all codec modules live under. The resolver
// prefixes every candidate name with it before asking the Loader.
const ModulePrefix = "encodings" + modSeparator

// Module is one loadable codec module, the unit a Loader yields.
type Module struct {
	// Path is the qualified module path, e.g. "encodings.utf_8".
	Path string

	// RegEntry is the registry-entry factory. A module without one loads
	// but cannot register, and lookups through it fail with
	// ErrIncompatibleCodec.
	RegEntry func() (*CodecInfo, error)

	// Aliases are additional names the module answers to. The registry
	// normalizes and registers them against the module's descriptor after
	// the first successful resolution.
	Aliases []string
}

// Loader loads codec modules by qualified path. Implementations report a
// missing module with an error wrapping ErrModuleNotFound; any other error
// aborts resolution instead of falling through to the next candidate.
type Loader interface {
	Load(path string) (*Module, error)
}

// Namespace is a Loader backed by an in-process registration table.
type Namespace struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

// NewNamespace returns an empty Namespace.
func NewNamespace() *Namespace {
	return &Namespace{modules: make(map[string]*Module)}
}

// DefaultNamespace is the process-wide module table. The stdcodecs package
// registers the built-in codec modules here on import.
var DefaultNamespace = NewNamespace()

// Register adds m under its path. Registering a path twice fails with
// ErrDuplicateModule; use Replace to install a corrected module over a
// previous one.
func (n *Namespace) Register(m *Module) error {
	if m == nil || m.Path == "" {
		return ErrInvalidModule
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.modules[m.Path]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateModule, m.Path)
	}
	n.modules[m.Path] = m
	return nil
}

// Replace installs m under its path, overwriting any previous registration.
// Descriptors a Registry has already cached are unaffected; only names that
// never resolved (or failed validation) see the replacement.
func (n *Namespace) Replace(m *Module) error {
	if m == nil || m.Path == "" {
		return ErrInvalidModule
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.modules[m.Path] = m
	return nil
}

// Load returns the module registered under path.
func (n *Namespace) Load(path string) (*Module, error) {
	n.mu.RLock()
	m, ok := n.modules[path]
	n.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
	}
	return m, nil
}

// Len reports the number of registered modules.
func (n *Namespace) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.modules)
}
