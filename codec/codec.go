// Package codec maps tabular file formats onto the toon.Document model and
// keeps a registry of them keyed by name and file extension.
//
// Registration is explicit: nothing registers itself at import time. Callers
// build a Registry (or use Default), register the codecs they want, and hold
// the returned Handle to undo the registration. This keeps initialization
// order and re-registration under the caller's control.
package codec

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	toon "github.com/toonfmt/go-toon"
)

// A Codec converts between one serialized tabular format and a
// toon.Document.
type Codec struct {
	// Name identifies the codec, e.g. "toon" or "csv". Unique per registry.
	Name string

	// Extensions are the file extensions the codec claims, each with its
	// leading dot. Unique per registry across all codecs.
	Extensions []string

	Parse     func(data []byte) (*toon.Document, error)
	Serialize func(doc *toon.Document) ([]byte, error)
}

// Registry is a set of codecs, safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	byName map[string]Codec
	byExt  map[string]string // extension -> codec name
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Codec),
		byExt:  make(map[string]string),
	}
}

// Default is the process-wide registry used by the package-level Register,
// ByName and ByExtension. It starts empty.
var Default = NewRegistry()

// Handle identifies one registration and can undo it.
type Handle struct {
	r    *Registry
	name string
	exts []string
	once sync.Once
}

// Unregister removes the codec this handle was returned for. It is safe to
// call more than once.
func (h *Handle) Unregister() {
	h.once.Do(func() {
		h.r.mu.Lock()
		defer h.r.mu.Unlock()
		delete(h.r.byName, h.name)
		for _, ext := range h.exts {
			delete(h.r.byExt, ext)
		}
	})
}

// Register adds c to the registry. The codec name and every extension it
// claims must be unused; a conflict leaves the registry unchanged.
func (r *Registry) Register(c Codec) (*Handle, error) {
	if c.Name == "" {
		return nil, errors.New("codec: register: empty codec name")
	}
	if c.Parse == nil || c.Serialize == nil {
		return nil, fmt.Errorf("codec: register %q: Parse and Serialize are required", c.Name)
	}

	exts := make([]string, len(c.Extensions))
	for i, ext := range c.Extensions {
		ext = strings.ToLower(ext)
		if ext == "" || !strings.HasPrefix(ext, ".") {
			return nil, fmt.Errorf("codec: register %q: extension %q must start with a dot", c.Name, c.Extensions[i])
		}
		exts[i] = ext
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[c.Name]; ok {
		return nil, fmt.Errorf("codec: %q is already registered", c.Name)
	}
	for _, ext := range exts {
		if owner, ok := r.byExt[ext]; ok {
			return nil, fmt.Errorf("codec: extension %q is already registered to %q", ext, owner)
		}
	}

	r.byName[c.Name] = c
	for _, ext := range exts {
		r.byExt[ext] = c.Name
	}
	return &Handle{r: r, name: c.Name, exts: exts}, nil
}

// ByName looks up a codec by its name.
func (r *Registry) ByName(name string) (Codec, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byName[name]
	return c, ok
}

// ByExtension looks up a codec by file extension, e.g. ".toon". Matching is
// case-insensitive.
func (r *Registry) ByExtension(ext string) (Codec, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, ok := r.byExt[strings.ToLower(ext)]
	if !ok {
		return Codec{}, false
	}
	c, ok := r.byName[name]
	return c, ok
}

// Register adds c to the Default registry.
func Register(c Codec) (*Handle, error) { return Default.Register(c) }

// ByName looks up a codec in the Default registry.
func ByName(name string) (Codec, bool) { return Default.ByName(name) }

// ByExtension looks up a codec in the Default registry by file extension.
func ByExtension(ext string) (Codec, bool) { return Default.ByExtension(ext) }
