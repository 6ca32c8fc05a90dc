package engine

import (
	"math"

	"github.com/lixenwraith/reddy-catch/event"
	"github.com/lixenwraith/reddy-catch/parameter"
	"github.com/lixenwraith/reddy-catch/physics"
	"github.com/lixenwraith/reddy-catch/vmath"
)

// Phase is the coarse session state
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseTerminal
)

// Stats are per-session counters, cleared by Reset
type Stats struct {
	Spawned int
	Caught  int
	Missed  int
	Ticks   uint64
	Elapsed float64 // Seconds of simulated play
}

// Options configures a Game; zero fields fall back to defaults
type Options struct {
	Width  float64
	Height float64
	Source vmath.Source
}

// Game is the simulation core. Reset and Update are the only mutators of session state
// Not safe for concurrent use: one goroutine drives ticks and input
type Game struct {
	width, height float64

	factory *Factory
	items   *Registry
	events  *event.Queue
	player  Player

	score         int
	multiplier    int
	multRemaining float64
	spawnTimer    float64
	spawnInterval float64
	phase         Phase
	status        string
	nextID        uint64
	stats         Stats
}

// New creates a game and resets it into the active phase
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = parameter.DefaultPlayfieldWidth
	}
	if opts.Height <= 0 {
		opts.Height = parameter.DefaultPlayfieldHeight
	}
	if opts.Source == nil {
		opts.Source = vmath.NewFastRand(1)
	}

	g := &Game{
		width:   opts.Width,
		height:  opts.Height,
		factory: NewFactory(opts.Source, opts.Width),
		items:   NewRegistry(),
		events:  event.NewQueue(),
		player: Player{
			Width:  parameter.PlayerWidth,
			Height: parameter.PlayerHeight,
			Y:      opts.Height - parameter.PlayerBottomOffset,
		},
	}
	g.Reset()
	return g
}

// Reset returns the session to its initial state: no items, zero score, fresh timers
func (g *Game) Reset() {
	g.items.Clear()
	g.events.Clear()

	g.score = 0
	g.multiplier = parameter.MultiplierNormal
	g.multRemaining = 0
	g.spawnTimer = 0
	g.spawnInterval = parameter.SpawnIntervalStart
	g.phase = PhaseActive
	g.status = parameter.StatusWelcome
	g.stats = Stats{}

	g.player.X = g.width / 2
	g.player.Dragging = false

	g.emit(event.EventReset, nil)
}

// Update advances the simulation by dt seconds
// Terminal phase and non-positive or non-finite deltas are no-ops
func (g *Game) Update(dt float64) {
	if g.phase == PhaseTerminal {
		return
	}
	if !(dt > 0) || !vmath.IsFinite(dt) {
		return
	}

	g.stats.Ticks++
	g.stats.Elapsed += dt

	g.updateSpawn(dt)
	g.updateMultiplier(dt)
	g.updateItems(dt)
}

func (g *Game) updateSpawn(dt float64) {
	g.spawnTimer += dt
	if g.spawnTimer < g.spawnInterval {
		return
	}

	e := g.factory.Spawn(g.score)
	g.nextID++
	e.ID = g.nextID
	g.items.Add(e)
	g.stats.Spawned++

	g.spawnTimer = 0
	g.spawnInterval = math.Max(parameter.SpawnIntervalFloor, g.spawnInterval-parameter.SpawnIntervalDecrement)

	g.emit(event.EventItemSpawned, e.ID)
}

func (g *Game) updateMultiplier(dt float64) {
	if g.multRemaining <= 0 {
		return
	}
	g.multRemaining -= dt
	if g.multRemaining <= 0 {
		g.multiplier = parameter.MultiplierNormal
		g.multRemaining = 0
		g.status = parameter.StatusMultiplierExpired
		g.emit(event.EventMultiplierExpired, nil)
	}
}

// updateItems walks in reverse so removal never shifts an unvisited index
// Off-screen removal is tested before collision; each item gets at most one of them
func (g *Game) updateItems(dt float64) {
	hitbox := g.player.Hitbox()

	for i := g.items.Len() - 1; i >= 0; i-- {
		it := g.items.At(i)
		it.Y += it.VY * dt

		if it.Y-it.Radius > g.height {
			id := it.ID
			g.items.RemoveAt(i)
			g.stats.Missed++
			g.emit(event.EventItemMissed, id)
			continue
		}

		// Remaining items still fall after a harmful hit, but nothing else resolves
		if g.phase == PhaseTerminal {
			continue
		}

		if physics.Collides(it.circle(), hitbox) {
			typ := it.Type
			g.items.RemoveAt(i)
			g.resolve(typ)
		}
	}
}

// resolve applies the lifecycle transition for a caught item
func (g *Game) resolve(typ ItemType) {
	switch {
	case typ == ItemBamboo:
		g.score += parameter.BambooPoints * g.multiplier
		g.stats.Caught++
		g.emit(event.EventItemCaught, typ)

	case typ == ItemPowerUp2x:
		g.multiplier = parameter.MultiplierBoosted
		g.multRemaining = parameter.MultiplierDuration
		g.status = parameter.StatusMultiplierOn
		g.stats.Caught++
		g.emit(event.EventItemCaught, typ)
		g.emit(event.EventMultiplierActivated, nil)

	case typ.Harmful():
		g.phase = PhaseTerminal
		g.status = parameter.StatusGameOver
		g.emit(event.EventGameOver, typ)
	}
}

func (g *Game) emit(t event.EventType, payload any) {
	g.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: g.stats.Ticks})
}

// SetPlayerTargetX clamps x so the hitbox stays inside the playfield, then assigns it
func (g *Game) SetPlayerTargetX(x float64) {
	half := g.player.Width / 2
	g.player.X = vmath.Clamp(x, half, g.width-half)
}

// SetDragging toggles whether pointer moves are applied
func (g *Game) SetDragging(active bool) {
	g.player.Dragging = active
}

func (g *Game) Dragging() bool {
	return g.player.Dragging
}

// PointerMoved forwards a pointer position only while a press is held
func (g *Game) PointerMoved(x float64) {
	if !g.player.Dragging {
		return
	}
	g.SetPlayerTargetX(x)
}

// Events returns the queue drained by the host after each tick
func (g *Game) Events() *event.Queue {
	return g.events
}

func (g *Game) Score() int                   { return g.score }
func (g *Game) Multiplier() int              { return g.multiplier }
func (g *Game) MultiplierRemaining() float64 { return g.multRemaining }
func (g *Game) SpawnInterval() float64       { return g.spawnInterval }
func (g *Game) StatusText() string           { return g.status }
func (g *Game) IsTerminal() bool             { return g.phase == PhaseTerminal }
func (g *Game) Player() Player               { return g.player }
func (g *Game) Stats() Stats                 { return g.stats }
func (g *Game) ItemCount() int               { return g.items.Len() }

// Size returns the playfield dimensions in simulation units
func (g *Game) Size() (float64, float64) {
	return g.width, g.height
}
