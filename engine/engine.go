// Package engine runs the game: it owns the state, schedules ticks on a
// fixed delay and applies input between ticks on a single goroutine.
package engine

import (
	"context"
	"log"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/natikozel/Snake/constants"
	"github.com/natikozel/Snake/game"
)

// Renderer paints a state. It must not keep the state's body slice.
type Renderer interface {
	Render(s game.State)
}

// SoundPlayer receives gameplay cues
type SoundPlayer interface {
	PlayEat()
	PlayGameOver()
}

type silentPlayer struct{}

func (silentPlayer) PlayEat()      {}
func (silentPlayer) PlayGameOver() {}

// Round identifies one run from start or reset until game over
type Round struct {
	ID        string
	StartedAt time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithSound routes eat and game over cues to p
func WithSound(p SoundPlayer) Option {
	return func(e *Engine) { e.sound = p }
}

// WithTimeProvider replaces the clock used for round timestamps
func WithTimeProvider(tp TimeProvider) Option {
	return func(e *Engine) { e.clock = tp }
}

// WithLogger replaces the standard logger
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRand replaces the food placement randomness
func WithRand(r game.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// Engine owns the game state. Apply and Run must be used from one goroutine;
// Post, Redraw, State and Round are safe from any goroutine.
type Engine struct {
	mu    sync.RWMutex
	state game.State
	round Round

	interval time.Duration
	rng      game.Rand
	renderer Renderer
	sound    SoundPlayer
	clock    TimeProvider
	logger   *log.Logger

	events chan game.Event
	redraw chan struct{}
}

// New creates an engine in the Ready phase
func New(board game.Board, interval time.Duration, renderer Renderer, opts ...Option) *Engine {
	e := &Engine{
		state:    game.NewState(board),
		interval: interval,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		renderer: renderer,
		sound:    silentPlayer{},
		clock:    NewMonotonicTimeProvider(),
		logger:   log.Default(),
		events:   make(chan game.Event, constants.EventQueueSize),
		redraw:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Post queues an event for the engine goroutine. It never blocks and
// reports false when the queue is full.
func (e *Engine) Post(ev game.Event) bool {
	select {
	case e.events <- ev:
		return true
	default:
		return false
	}
}

// Redraw asks the engine goroutine to repaint the current state
func (e *Engine) Redraw() {
	select {
	case e.redraw <- struct{}{}:
	default:
	}
}

// State returns a snapshot of the current state
func (e *Engine) State() game.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.state
	s.Body = slices.Clone(s.Body)
	return s
}

func (e *Engine) running() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Running()
}

// Round returns the current round identity
func (e *Engine) Round() Round {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.round
}

// Apply runs one event through the state machine, fires sound cues and
// renders the result
func (e *Engine) Apply(ev game.Event) game.State {
	e.mu.Lock()
	prev := e.state
	next := game.Update(prev, ev, e.rng)
	e.state = next
	if startsRound(prev, next, ev) {
		e.round = Round{ID: uuid.NewString(), StartedAt: e.clock.Now()}
	}
	round := e.round
	e.mu.Unlock()

	e.observe(prev, next, ev, round)
	e.renderer.Render(next)
	return next
}

func startsRound(prev, next game.State, ev game.Event) bool {
	if !next.Running() {
		return false
	}
	return ev.Kind == game.EventReset || (ev.Kind == game.EventStart && !prev.Running())
}

func (e *Engine) observe(prev, next game.State, ev game.Event, round Round) {
	if startsRound(prev, next, ev) {
		e.logger.Printf("round %s started (%s)", round.ID, ev.Kind)
		return
	}

	if next.Score > prev.Score {
		e.sound.PlayEat()
	}
	if prev.Running() && next.Phase == game.PhaseGameOver {
		e.sound.PlayGameOver()
		e.logger.Printf("round %s over: %s, score=%d length=%d ticks=%d duration=%v",
			round.ID, next.Outcome, next.Score, len(next.Body), next.Ticks,
			e.clock.Now().Sub(round.StartedAt).Round(time.Millisecond))
	}
}

// Run starts the round and drives ticks until ctx is cancelled. Each tick
// is scheduled a fixed delay after the previous one completed, and only
// while the round is running; game over simply stops rescheduling.
func (e *Engine) Run(ctx context.Context) {
	e.Apply(game.Event{Kind: game.EventStart})

	timer := time.NewTimer(e.interval)
	defer timer.Stop()
	armed := true

	for {
		var tick <-chan time.Time
		if armed {
			tick = timer.C
		}

		select {
		case <-ctx.Done():
			return
		case <-tick:
			armed = false
			e.Apply(game.Event{Kind: game.EventTick})
		case ev := <-e.events:
			e.Apply(ev)
		case <-e.redraw:
			e.renderer.Render(e.State())
		}

		if !armed && e.running() {
			timer.Reset(e.interval)
			armed = true
		}
	}
}
