package game

import (
	"log"
	"math"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/engine"
	"github.com/lixenwraith/ant-attack/entity"
	"github.com/lixenwraith/ant-attack/input"
)

// InterfaceState is the top-level screen the session is in
type InterfaceState uint8

const (
	StateTitle InterfaceState = iota
	StateIngame
	StateIngameMessage // Message over gameplay, simulation runs unless the message freezes
	StateShowScore
	StateFreeze // Nothing updates, last frame stays on screen
	StateOver
)

var stateNames = [...]string{
	StateTitle:         "title",
	StateIngame:        "ingame",
	StateIngameMessage: "message",
	StateShowScore:     "score",
	StateFreeze:        "freeze",
	StateOver:          "over",
}

func (s InterfaceState) String() string {
	if int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Session messages
const (
	RescueText   = "\"MY HERO! TAKE ME\nAWAY FROM ALL THIS!\""
	StompText    = "PARALYZED AN ANT!"
	DeathText    = "\"They got me!\""
	WinRoundText = "YOU ARE A TRUE HERO!"
)

// Options tunes a session
type Options struct {
	Ammo      int
	RoundTime float32
}

// DefaultOptions returns the stock round settings
func DefaultOptions() Options {
	return Options{
		Ammo:      constant.StartingAmmo,
		RoundTime: constant.RoundTime,
	}
}

// pendingState is a state switch scheduled on the session clock
type pendingState struct {
	at    time.Duration
	state InterfaceState
}

// HUD is the status panel data for one frame
type HUD struct {
	Score      int
	Rescued    int
	Ammo       int
	BoyHP      int
	GirlHP     int
	RoundTime  int
	Round      int
	RoundCount int
	AliveAnts  int
	PlayerTile core.Tile
	Charge     float32 // Bomb throw charge in [0,1]
	Debug      bool
	FreeLook   bool
}

// Session drives interface states, scoring and player control over a round controller
// It is the notification sink of its world
type Session struct {
	rounds *Rounds
	world  *engine.World
	sound  engine.SoundPlayer
	opts   Options

	state   InterfaceState
	queue   []pendingState // Sorted by due time
	clock   time.Duration
	message engine.Message

	debug       bool
	cursor      *entity.Cursor
	playerIsBoy bool
	winFlag     bool

	score      int
	rescued    int
	ammo       int
	throwForce float32 // +Inf once the current charge was thrown
	roundTime  float32
}

// NewSession creates a session on the title screen and registers it as the world's notifier
func NewSession(w *engine.World, sound engine.SoundPlayer, opts Options) *Session {
	s := &Session{
		rounds:     NewRounds(w),
		world:      w,
		opts:       opts,
		state:      StateTitle,
		throwForce: float32(math.Inf(1)),
	}
	w.SetServices(sound, s)
	s.sound = w.Sound()
	return s
}

// Notify shows a message over gameplay and returns to play afterwards
func (s *Session) Notify(msg engine.Message) {
	s.showMessage(msg, StateIngame)
}

func (s *Session) showMessage(msg engine.Message, exit InterfaceState) {
	s.message = msg
	s.state = StateIngameMessage
	s.delayState(msg.Duration, exit)
}

// delayState schedules a switch to state after delay, ties keep insertion order
func (s *Session) delayState(delay time.Duration, state InterfaceState) {
	p := pendingState{at: s.clock + delay, state: state}
	i, _ := slices.BinarySearchFunc(s.queue, p.at, func(e pendingState, at time.Duration) int {
		if e.at <= at {
			return -1
		}
		return 1
	})
	s.queue = slices.Insert(s.queue, i, p)
}

// Update advances the session by dt with the frame's key state
func (s *Session) Update(dt time.Duration, in input.Controls) {
	s.clock += dt

	if in.KeyPressed(input.ActionDebug) {
		s.debug = !s.debug
	}

	for len(s.queue) > 0 && s.queue[0].at < s.clock {
		s.state = s.queue[0].state
		s.queue = s.queue[1:]
	}

	switch s.state {
	case StateTitle:
		s.updateTitle(in)
	case StateIngame:
		s.updateIngame(dt, in)
	case StateIngameMessage:
		if !s.message.Freeze {
			s.updateIngame(dt, in)
		}
	case StateShowScore:
		s.updateScore(in)
	case StateOver:
		s.updateOver(in)
	}
}

func (s *Session) updateTitle(in input.Controls) {
	boy, girl := in.KeyPressed(input.ActionBoy), in.KeyPressed(input.ActionGirl)
	if !boy && !girl {
		return
	}
	s.sound.Play(core.CueOf(core.SoundBlip))
	s.playerIsBoy = boy
	if err := s.RestartGame(); err != nil {
		log.Printf("restart game: %v", err)
		return
	}
	s.state = StateIngame
}

func (s *Session) updateScore(in input.Controls) {
	if !in.KeyPressed(input.ActionConfirm) {
		return
	}
	s.sound.StopAll()
	s.sound.Play(core.CueOf(core.SoundBlip))
	if err := s.restartRound(s.rounds.Round + 1); err != nil {
		log.Printf("next round: %v", err)
		s.state = StateOver
		return
	}
	s.state = StateFreeze
	s.delayState(constant.RoundStartFreeze, StateIngame)
}

func (s *Session) updateOver(in input.Controls) {
	if !in.KeyPressed(input.ActionConfirm) {
		return
	}
	s.sound.StopAll()
	s.sound.Play(core.CueOf(core.SoundBlip))
	s.state = StateTitle
}

func (s *Session) updateIngame(dt time.Duration, in input.Controls) {
	secs := float32(dt.Seconds())
	s.world.Update(secs)
	s.roundTime -= secs * constant.RoundTimeRate

	player, hostage := s.rounds.Player, s.rounds.Hostage

	if in.KeyPressed(input.ActionFreeLook) {
		s.toggleFreeLook()
	}
	if in.KeyPressed(input.ActionBomb) {
		s.throwForce = 0
	}

	if s.cursor != nil {
		s.steerCursor(in)
	} else if player.Body().DecisionFrame() {
		s.decidePlayer(secs, in)
	}

	if s.state == StateIngame && !(hostage.Alive() && player.Alive()) {
		s.showMessage(engine.Message{
			Text:     DeathText,
			Duration: constant.DeathMessageDuration,
		}, StateOver)
		s.sound.Play(core.CueOf(core.SoundOver))
	}
}

// decidePlayer runs the player's rules on its decision frame
func (s *Session) decidePlayer(secs float32, in input.Controls) {
	player, hostage := s.rounds.Player, s.rounds.Hostage
	body := player.Body()

	if ant, ok := s.world.OccupantAt(body.Tile().Below()).(*entity.Ant); ok && !ant.Paralyzed() {
		s.showMessage(engine.Message{
			Text:     StompText,
			Duration: constant.StompMessageDuration,
			Style:    engine.MessageInfo,
		}, StateIngame)
		s.sound.Play(core.CueOf(core.SoundAnt))
		ant.Paralyze(constant.AntStompParalysis)
	}

	// A tied-up hostage has to be freed first, winning and rescuing on one frame would score twice
	hostageInReach := slices.Contains(body.EntitiesInReach(), engine.Entity(hostage))
	inner := core.Area{Width: s.world.Voxels().SizeX, Height: s.world.Voxels().SizeY}.Inset(1)
	if hostageInReach && hostage.Rescued() && !inner.Contains(core.Flat(body.Position)) {
		s.winRound()
		return
	}

	if hostage.TiedUp() && hostageInReach {
		s.showMessage(engine.Message{
			Text:     RescueText,
			Duration: constant.RescueMessageDuration,
			Freeze:   true,
		}, StateIngame)
		s.sound.Play(core.CueOf(core.SoundRescue))
		hostage.Rescue()
	}

	if s.ammo > 0 && in.KeyDown(input.ActionBomb) && s.throwForce < constant.BombMaxCharge {
		s.throwForce += secs
		return
	}

	if in.KeyDown(input.ActionRight) {
		player.StepIn(core.PositiveX)
	}
	if in.KeyDown(input.ActionLeft) {
		player.StepIn(core.NegativeX)
	}
	if in.KeyDown(input.ActionDown) {
		player.StepIn(core.PositiveY)
	}
	if in.KeyDown(input.ActionUp) {
		player.StepIn(core.NegativeY)
	}

	if (in.KeyDown(input.ActionBomb) || in.KeyReleased(input.ActionBomb)) && !math.IsInf(float64(s.throwForce), 1) {
		if s.ammo > 0 {
			s.ammo--
			s.throwBomb(min(s.throwForce, constant.BombMaxCharge))
		}
		s.throwForce = float32(math.Inf(1))
	}
}

func (s *Session) throwBomb(force float32) {
	player := s.rounds.Player
	bomb := entity.NewBomb(int(constant.BombBaseDistance + force*constant.BombChargeDistance))
	bomb.Body().Direction = player.Body().Direction
	s.world.Spawn(bomb, player.Body().Tile())
}

func (s *Session) winRound() {
	// Exits queued by earlier messages must not resume play
	s.queue = s.queue[:0]
	s.showMessage(engine.Message{
		Text:     WinRoundText,
		Duration: constant.WinMessageDuration,
		Freeze:   true,
	}, StateIngameMessage)
	s.sound.Play(core.CueOf(core.SoundFanfare))

	hp := float32(s.rounds.Player.Hitpoints + s.rounds.Hostage.Hitpoints)
	s.score += int(hp / constant.ScoreHitpointDivisor * s.roundTime)
	s.rescued++

	if !s.rounds.LastRound() {
		s.delayState(constant.ScoreDelay, StateShowScore)
		return
	}
	s.delayState(constant.ScoreDelay, StateOver)
	s.winFlag = true
}

// RestartGame resets the score and starts the first round
func (s *Session) RestartGame() error {
	s.score = 0
	s.rescued = 0
	s.winFlag = false
	return s.restartRound(0)
}

func (s *Session) restartRound(round int) error {
	s.cursor = nil
	if err := s.rounds.RestartRound(s.playerIsBoy, round); err != nil {
		return err
	}
	s.roundTime = s.opts.RoundTime
	s.ammo = s.opts.Ammo
	s.throwForce = float32(math.Inf(1))
	return nil
}

// toggleFreeLook swaps player control for a free camera cursor and back
func (s *Session) toggleFreeLook() {
	if s.cursor != nil {
		s.world.Despawn(s.cursor)
		s.cursor = nil
		return
	}
	s.cursor = entity.NewCursor()
	s.world.Spawn(s.cursor, s.rounds.Player.Body().Tile())
}

func (s *Session) steerCursor(in input.Controls) {
	moves := []struct {
		action input.Action
		dir    core.Direction
	}{
		{input.ActionRight, core.PositiveX},
		{input.ActionLeft, core.NegativeX},
		{input.ActionDown, core.PositiveY},
		{input.ActionUp, core.NegativeY},
		{input.ActionRaise, core.PositiveZ},
		{input.ActionLower, core.NegativeZ},
	}
	for _, m := range moves {
		if in.KeyDown(m.action) {
			s.cursor.Move(m.dir)
			return
		}
	}
}

// State returns the current interface state
func (s *Session) State() InterfaceState {
	return s.state
}

// Message returns the last shown message
func (s *Session) Message() engine.Message {
	return s.message
}

// Clock returns the session time
func (s *Session) Clock() time.Duration {
	return s.clock
}

// Won reports whether the last game ended with every hostage rescued
func (s *Session) Won() bool {
	return s.winFlag
}

// Score returns the total score
func (s *Session) Score() int {
	return s.score
}

// World returns the simulated world
func (s *Session) World() *engine.World {
	return s.world
}

// Rounds returns the round controller
func (s *Session) Rounds() *Rounds {
	return s.rounds
}

// Focus returns the point the camera centres on
func (s *Session) Focus() mgl32.Vec3 {
	if s.cursor != nil {
		return s.cursor.Body().Position
	}
	if p := s.rounds.Player; p != nil {
		return p.Body().Position
	}
	return mgl32.Vec3{}
}

// HUD collects the status panel values
func (s *Session) HUD() HUD {
	h := HUD{
		Score:      s.score,
		Rescued:    s.rescued,
		Ammo:       s.ammo,
		RoundTime:  int(s.roundTime),
		Round:      s.rounds.Round,
		RoundCount: s.rounds.RoundCount(),
		AliveAnts:  s.rounds.AliveAnts(),
		Debug:      s.debug,
		FreeLook:   s.cursor != nil,
	}
	if !math.IsInf(float64(s.throwForce), 1) {
		h.Charge = min(s.throwForce, constant.BombMaxCharge)
	}

	player, hostage := s.rounds.Player, s.rounds.Hostage
	if player == nil || hostage == nil {
		return h
	}
	h.PlayerTile = player.Body().Tile()
	if player.Boy {
		h.BoyHP, h.GirlHP = player.Hitpoints, hostage.Hitpoints
	} else {
		h.BoyHP, h.GirlHP = hostage.Hitpoints, player.Hitpoints
	}
	return h
}
