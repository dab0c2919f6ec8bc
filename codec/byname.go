package codec

import "fmt"

// ByName returns the candidate-list codec registered under name:
// "json", "msgpack", "cbor" or "proto".
func ByName(name string) (Codec[[]string], error) {
	switch name {
	case "", "json":
		return JSON[[]string]{}, nil
	case "msgpack":
		return Msgpack[[]string]{}, nil
	case "cbor":
		c, err := NewCBOR[[]string](true)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "proto":
		return Candidates{}, nil
	default:
		return nil, fmt.Errorf("codec: unknown codec %q", name)
	}
}
