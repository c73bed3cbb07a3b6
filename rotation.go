package boxgrid

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// MaxInitialRotation bounds the starting Y rotation of every box.
const MaxInitialRotation = 0.5

// RotationSource picks the starting Y rotation, in [0, MaxInitialRotation), of
// the box at row, column.
type RotationSource interface {
	Rotation(row, column int) float64
}

const (
	RotationRandom = "random"
	RotationPerlin = "perlin"
	RotationNone   = "none"
)

// NewRotationSource returns the named source seeded with seed.
func NewRotationSource(name string, seed int64) (RotationSource, error) {
	switch name {
	case RotationRandom, "":
		return NewRandomRotations(seed), nil
	case RotationPerlin:
		return NewPerlinRotations(seed), nil
	case RotationNone:
		return FixedRotation(0), nil
	}
	return nil, fmt.Errorf("%w: unknown rotation source %q", ErrInvalidConfig, name)
}

type randomRotations struct {
	rng *rand.Rand
}

func NewRandomRotations(seed int64) RotationSource {
	return &randomRotations{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRotations) Rotation(row, column int) float64 {
	return r.rng.Float64() * MaxInitialRotation
}

// perlin noise sampled on a lattice offset from the integers, where the noise
// is always zero.
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
	perlinStep  = 0.37
)

type perlinRotations struct {
	noise *perlin.Perlin
}

func NewPerlinRotations(seed int64) RotationSource {
	return &perlinRotations{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)}
}

func (p *perlinRotations) Rotation(row, column int) float64 {
	n := p.noise.Noise2D(float64(column)*perlinStep, float64(row)*perlinStep)
	v := (n + 1) / 2
	if v < 0 {
		v = 0
	}
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	return v * MaxInitialRotation
}

// FixedRotation gives every box the same starting rotation.
type FixedRotation float64

func (f FixedRotation) Rotation(row, column int) float64 {
	return float64(f)
}
