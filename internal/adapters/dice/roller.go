// Package dice is the local dice engine used when no VTT host supplies
// rolls. Rolls come from a PCG generator, so a fixed seed reproduces the
// same sequence of dice.
package dice

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

var _ ports.DiceRoller = (*Roller)(nil)

// Errors returned for impossible roll requests. Both wrap domain.ErrValidation.
var (
	ErrInvalidCount = fmt.Errorf("dice count must be positive: %w", domain.ErrValidation)
	ErrInvalidFaces = fmt.Errorf("die faces must be positive: %w", domain.ErrValidation)
)

// Roller is safe for concurrent use; callers share one generator.
type Roller struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed uint64
}

// New returns a Roller seeded with seed, or with a random seed when seed is 0.
func New(seed uint64) (*Roller, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return &Roller{
		rng:  rand.New(rand.NewPCG(seed, seed^pcgStream)),
		seed: seed,
	}, nil
}

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// Seed returns the seed in use, so a roll sequence can be replayed.
func (r *Roller) Seed() uint64 {
	return r.seed
}

// Roll returns count independent values in [1, faces] in the order rolled.
func (r *Roller) Roll(ctx context.Context, count, faces int) ([]int, error) {
	if count < 1 {
		return nil, fmt.Errorf("rolling %d dice: %w", count, ErrInvalidCount)
	}
	if faces < 1 {
		return nil, fmt.Errorf("rolling d%d: %w", faces, ErrInvalidFaces)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]int, count)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range out {
		out[i] = r.rng.IntN(faces) + 1
	}
	return out, nil
}

// NewSeed returns a non-zero seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if s := binary.LittleEndian.Uint64(b[:]); s != 0 {
			return s, nil
		}
	}
}
