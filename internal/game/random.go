package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"sync"
)

// Generator is the random source for secrets.
// Intn returns a value in [0, n).
type Generator interface {
	Intn(n int) int
}

type cryptoGenerator struct{}

// NewCryptoGenerator returns the default generator backed by crypto/rand.
func NewCryptoGenerator() Generator { return cryptoGenerator{} }

func (cryptoGenerator) Intn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms.
		panic(err)
	}
	return int(v.Int64())
}

type seededGenerator struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededGenerator returns a reproducible generator: equal seeds yield
// equal sequences. It is safe to share between sessions.
func NewSeededGenerator(seed uint64) Generator {
	return &seededGenerator{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededGenerator) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// FixedGenerator always yields the secret it holds. Useful in tests and
// demos; values outside [MinNumber, MaxNumber] are clamped.
type FixedGenerator int

func (f FixedGenerator) Intn(n int) int {
	v := int(f) - MinNumber
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v
}
