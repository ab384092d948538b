package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
	"github.com/lixenwraith/ant-attack/entity"
)

// ErrNoSuchRound is returned when restarting a round the level has no hostage for
var ErrNoSuchRound = errors.New("no such round")

// Rounds owns the round lifecycle of one level
type Rounds struct {
	World   *engine.World
	Player  *entity.Human
	Hostage *entity.Human
	Round   int

	// Ants holds the ants spawned for the current round, dead ones included
	Ants []*entity.Ant
}

// NewRounds binds a round controller to a world
func NewRounds(w *engine.World) *Rounds {
	return &Rounds{World: w}
}

// RoundCount returns the number of rounds, one per hostage point
func (r *Rounds) RoundCount() int {
	return len(r.World.Layout.Hostages)
}

// LastRound reports whether the current round is the final one
func (r *Rounds) LastRound() bool {
	return r.Round >= r.RoundCount()-1
}

// RestartRound clears the world and respawns the player, the hostage and the ants of round
// The ant count and positions are reproducible for a given round index
func (r *Rounds) RestartRound(playerIsBoy bool, round int) error {
	if round < 0 || round >= r.RoundCount() {
		return fmt.Errorf("round %d of %d: %w", round, r.RoundCount(), ErrNoSuchRound)
	}

	r.World.Clear()
	r.Round = round
	r.Ants = r.Ants[:0]

	r.Player = r.SpawnPlayer(playerIsBoy)
	r.Hostage = r.SpawnHostage(round)

	seed := int64(constant.RoundSeedBase + round)
	rng := rand.New(rand.NewSource(seed))
	count := rng.Intn(round+1) + round + 1
	for i := range count {
		r.Ants = append(r.Ants, r.SpawnAnt(rng, seed<<8+int64(i)))
	}
	return nil
}

// SpawnPlayer places a new player at the level start
func (r *Rounds) SpawnPlayer(boy bool) *entity.Human {
	p := entity.NewHuman(boy)
	r.World.Spawn(p, r.World.Layout.Spawn)
	r.World.SetPlayer(p)
	return p
}

// SpawnHostage places a tied-up hostage of the opposite gender at the round's point
func (r *Rounds) SpawnHostage(round int) *entity.Human {
	boy := true
	if r.Player != nil {
		boy = !r.Player.Boy
	}
	h := entity.NewHuman(boy)
	h.SetHostage()
	r.World.Spawn(h, r.World.Layout.Hostages[round])
	return h
}

// SpawnAnt places an ant on the ground at a random tile inside the castle
func (r *Rounds) SpawnAnt(rng *rand.Rand, seed int64) *entity.Ant {
	castle := r.World.Layout.Castle
	a := entity.NewAnt(seed)
	tile := core.Tile{X: castle.X, Y: castle.Y}
	if castle.Width > 0 {
		tile.X += rng.Intn(castle.Width)
	}
	if castle.Height > 0 {
		tile.Y += rng.Intn(castle.Height)
	}
	r.World.Spawn(a, tile)
	return a
}

// AliveAnts counts ants still in the world
func (r *Rounds) AliveAnts() int {
	n := 0
	for _, a := range r.Ants {
		if a.Body().Spawned() {
			n++
		}
	}
	return n
}
