// Package component defines the value types shared by discovery and loading:
// the Descriptor naming one loadable extension unit, and the two error types
// that discovery and loading surface to the caller.
//
// A Descriptor is created during a discovery pass and discarded once the
// corresponding load attempt has finished. It carries nothing but the unit's
// fully-qualified dotted name.
package component
