package codec

import (
	toon "github.com/toonfmt/go-toon"
)

// TOON returns the codec for the TOON format itself. Options such as
// toon.StrictArity apply to every parse the codec performs.
func TOON(opts ...toon.Option) Codec {
	return Codec{
		Name:       "toon",
		Extensions: []string{toon.Ext},
		Parse: func(data []byte) (*toon.Document, error) {
			return toon.Parse(string(data), opts...)
		},
		Serialize: func(doc *toon.Document) ([]byte, error) {
			s, err := toon.Serialize(doc)
			if err != nil {
				return nil, err
			}
			return []byte(s), nil
		},
	}
}
