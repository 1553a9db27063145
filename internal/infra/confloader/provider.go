// Package confloader provides configuration loading for idmint.
package confloader

import "errors"

// ErrReadBytesNotSupported is returned when ReadBytes is called on a
// map provider.
var ErrReadBytesNotSupported = errors.New("confloader: ReadBytes not supported by map provider, use Read() instead")

// mapProvider is a koanf provider backed by an in-memory map.
//
// koanf.Provider implementations expose either ReadBytes() or Read();
// koanf uses whichever is available. For map-based providers Read()
// is the appropriate method.
type mapProvider map[string]any

// ReadBytes returns an error as the map provider doesn't support byte
// serialization.
func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read returns the configuration map.
func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
