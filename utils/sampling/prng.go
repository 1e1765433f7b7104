// Package sampling implements the byte sources the polynomial samplers read from:
// crypto/rand for key material and a keyed blake2b stream for reproducible sampling.
package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for secure generation of random bytes
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from crypto/rand and can be shared across goroutines.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG reading from crypto/rand.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with bytes from crypto/rand.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a deterministic byte stream: the blake2b XOF keyed with a seed of at most
// [blake2b.Size] bytes. Two KeyedPRNG with the same key produce the same sequence, so a
// sampled polynomial can be reproduced from its key alone.
//
// Reads are serialised, but the sequence is only deterministic when a single goroutine
// consumes it. Use [KeyedPRNG.Fork] to give each consumer its own stream.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG seeded with key.
// A nil or empty key is accepted but yields a public stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {

	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: key of %d bytes: %w", len(key), err)
	}

	prng := &KeyedPRNG{xof: xof, key: make([]byte, len(key))}
	copy(prng.key, key)

	return prng, nil
}

// Key returns a copy of the seed. NewKeyedPRNG(prng.Key()) restarts the same stream.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Fork returns a new KeyedPRNG keyed with blake2b-256(key || label). Forks with distinct
// labels are independent of each other and of the parent, and forking does not advance
// the parent stream.
func (prng *KeyedPRNG) Fork(label string) (*KeyedPRNG, error) {
	seed := blake2b.Sum256(append(prng.Key(), label...))
	return NewKeyedPRNG(seed[:])
}

// Read fills sum with the next bytes of the stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the stream to its beginning.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
