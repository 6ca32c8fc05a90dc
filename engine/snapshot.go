package engine

// ItemView is the render-facing copy of a falling item
type ItemView struct {
	ID     uint64
	X, Y   float64
	Radius float64
	Type   ItemType
}

// Snapshot is a value copy of everything a presentation adapter may draw
type Snapshot struct {
	Width, Height float64

	Player Player
	Items  []ItemView

	Score               int
	Multiplier          int
	MultiplierRemaining float64
	SpawnInterval       float64
	StatusText          string
	Terminal            bool
	Stats               Stats
}

// Snapshot allocates a fresh snapshot of the current state
func (g *Game) Snapshot() Snapshot {
	var s Snapshot
	g.SnapshotInto(&s)
	return s
}

// SnapshotInto fills dst, reusing its Items backing array
func (g *Game) SnapshotInto(dst *Snapshot) {
	dst.Width = g.width
	dst.Height = g.height
	dst.Player = g.player
	dst.Score = g.score
	dst.Multiplier = g.multiplier
	dst.MultiplierRemaining = g.multRemaining
	dst.SpawnInterval = g.spawnInterval
	dst.StatusText = g.status
	dst.Terminal = g.phase == PhaseTerminal
	dst.Stats = g.stats

	dst.Items = dst.Items[:0]
	g.items.Each(func(e FallingEntity) {
		dst.Items = append(dst.Items, ItemView{
			ID:     e.ID,
			X:      e.X,
			Y:      e.Y,
			Radius: e.Radius,
			Type:   e.Type,
		})
	})
}
