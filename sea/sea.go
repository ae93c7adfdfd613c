// Package sea provides the SeaHash adapter.
package sea

import (
	"github.com/blainsmith/seahash"

	"github.com/hupe1980/fasthash"
)

// Hash64 is SeaHash. It takes no seed; streaming buffers input.
var Hash64 = fasthash.Define(fasthash.Descriptor[fasthash.NoSeed, fasthash.Digest64]{
	Name: "sea64",
	Hash: func(b []byte) fasthash.Digest64 { return fasthash.Digest64(seahash.Sum64(b)) },
})
