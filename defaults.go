package twotouch

import "sync"

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

var defaultCodec = sync.OnceValue(func() *Codec { return New(Options{}) })

// Default returns the shared Codec with no logger and no hooks.
func Default() *Codec { return defaultCodec() }

// Encode encodes text with the Default codec.
func Encode(text string) ([]string, error) { return Default().Encode(text) }

// Decode decodes code with the Default codec.
func Decode(code string) (string, error) { return Default().Decode(code) }
