// Package registry is the host module system for extension units.
//
// Units are not imported by reflecting over a module path at runtime. Every
// unit compiled into the binary registers a zero-argument-style init function
// under its fully-qualified name, usually from a Module's Register method.
// Import then resolves a name to that function, looks up the unit's manifest,
// runs the function once and caches the resulting Unit, so that later imports
// and lookups by name return the same unit.
//
// A name that has a manifest on disk but no compiled-in init function is
// reported as ErrNotFound: it was listed, but it is not actually present.
package registry
