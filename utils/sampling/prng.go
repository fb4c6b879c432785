package sampling

import (
	"encoding/binary"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is a structure storing the parameters used to *deterministically*
// generate a sequence of random bytes from a key using the hash function
// blake2b. The same key always yields the same stream, which makes it
// suitable for reproducible randomized tests.
// WARNING: KeyedPRNG should NOT be called by multiple threads. It does not
// make sense to do so as the resulting sequence will not be deterministic
// for a given key.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with `NewKeyedPRNG` to instantiate a new PRNG that
// will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to the state it was at its creation.
func (prng *KeyedPRNG) Reset() {
	var err error
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, prng.key); err != nil {
		panic(err)
	}
}

// Float64 returns a uniform float64 in [min, max) drawn from the PRNG.
func Float64(prng PRNG, min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.BigEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}
