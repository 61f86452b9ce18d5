package economy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource источник случайности для кликов, слота и квестов
type RandomSource interface {
	Float64() float64
}

type cryptoSource struct{}

// Float64 равномерно в [0,1) из 53 бит crypto/rand
func (cryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("crypto/rand: " + err.Error())
	}
	return float64(binary.LittleEndian.Uint64(b[:])>>11) / (1 << 53)
}

// DefaultRNG безопасен для конкурентного использования
func DefaultRNG() RandomSource {
	return cryptoSource{}
}

type seededSource struct {
	r *rand.Rand
}

func (s *seededSource) Float64() float64 {
	return s.r.Float64()
}

// NewSeededRNG детерминированный генератор. Не потокобезопасен
func NewSeededRNG(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// intn индекс в [0,n)
func intn(rng RandomSource, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
