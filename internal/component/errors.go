package component

import "fmt"

// DiscoveryError reports a failure while enumerating the units of a namespace.
type DiscoveryError struct {
	Namespace string
	// Source names the search-path entry or finder that failed.
	Source string
	Err    error
}

func (e *DiscoveryError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("discovering components in %s: %v", e.Namespace, e.Err)
	}
	return fmt.Sprintf("discovering components in %s (%s): %v", e.Namespace, e.Source, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// LoadError reports a failure while importing one named unit.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("importing component %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
