// Package shuffle redistributes tile faces over the active tiles of a board so
// that every matching key keeps an even count and, whenever two or more tiles
// are free, at least one legal move exists.
package shuffle

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solitaire/internal/board"
	"github.com/vovakirdan/solitaire/internal/tile"
)

// DefaultMaxAttempts is the number of random deals tried before recovery.
const DefaultMaxAttempts = 10

var (
	// ErrUnsolvable means the board has active tiles but no face that could be
	// given to a recovery pair. It signals a broken board, not a normal outcome.
	ErrUnsolvable = errors.New("shuffle: no face available to pair free tiles")

	// ErrPoolSize is returned by Deal when the pool does not cover the board.
	ErrPoolSize = errors.New("shuffle: pool size does not match tile count")
)

// Result describes what a shuffle did.
type Result struct {
	Attempts  int  // random deals tried
	Recovered bool // a recovery pair was forced after the random deals
	Dropped   int  // faces removed to make every key count even
}

// Engine shuffles faces with its own seeded random source.
// An Engine is not safe for concurrent use.
type Engine struct {
	rng         *rand.Rand
	maxAttempts int
	logger      *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxAttempts sets how many random deals are tried before recovery.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithLogger sets the engine's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine seeded with seed.
func New(seed int64, opts ...Option) *Engine {
	e := &Engine{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: DefaultMaxAttempts,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Deal gives the board a fresh set of faces and shuffles them. The pool must
// hold exactly one face per tile.
func (e *Engine) Deal(b *board.Board, pool []tile.Type) (Result, error) {
	if len(pool) != b.Len() {
		return Result{}, fmt.Errorf("%w: %d faces for %d tiles", ErrPoolSize, len(pool), b.Len())
	}
	if err := b.SetTypes(pool); err != nil {
		return Result{}, err
	}
	return e.Shuffle(b)
}

// Shuffle reassigns the faces of the active tiles.
//
// Faces are bucketed by matching key and the last face of every odd bucket is
// dropped; surplus tiles become untyped. The pool is then dealt at random up to
// the attempt limit until a legal move appears. If none does, the two tiles
// with the highest strategic value are forced to share a face.
func (e *Engine) Shuffle(b *board.Board) (Result, error) {
	active := b.ActiveIDs()
	if len(active) == 0 {
		return Result{}, nil
	}

	fallback := firstValid(b, active)
	pool, dropped := evenPool(b, active)
	res := Result{Dropped: dropped}
	if dropped > 0 {
		e.logger.Debug("dropped unpaired faces", "count", dropped)
	}

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		res.Attempts = attempt
		e.rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		assign(b, active, pool)
		if b.HasLegalMove() {
			return res, nil
		}
	}

	if len(active) < 2 {
		return res, nil
	}

	res.Recovered = true
	a, c := topTwo(b, active)
	e.logger.Debug("forcing recovery pair", "a", a, "b", c, "attempts", res.Attempts)
	if err := forcePair(b, active, a, c, fallback); err != nil {
		return res, err
	}
	return res, nil
}

// evenPool collects the faces of the active tiles and drops the last face of
// every key with an odd count. Buckets are visited in first-seen order.
func evenPool(b *board.Board, active []int) ([]tile.Type, int) {
	var keys []string
	buckets := make(map[string][]tile.Type)
	for _, id := range active {
		t := b.Tile(id).Type
		if !t.Valid() {
			continue
		}
		k := t.Key()
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], t)
	}

	pool := make([]tile.Type, 0, len(active))
	dropped := 0
	for _, k := range keys {
		faces := buckets[k]
		if len(faces)%2 != 0 {
			faces = faces[:len(faces)-1]
			dropped++
		}
		pool = append(pool, faces...)
	}
	return pool, dropped
}

// assign deals the pool onto the active tiles in id order. Tiles beyond the
// pool become untyped.
func assign(b *board.Board, active []int, pool []tile.Type) {
	for i, id := range active {
		if i < len(pool) {
			b.Tile(id).Type = pool[i]
		} else {
			b.Tile(id).Type = tile.Type{}
		}
	}
}

func firstValid(b *board.Board, active []int) tile.Type {
	for _, id := range active {
		if t := b.Tile(id).Type; t.Valid() {
			return t
		}
	}
	return tile.Type{}
}
