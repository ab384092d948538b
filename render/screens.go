package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/engine"
	"github.com/lixenwraith/ant-attack/game"
)

// Screen texts
const (
	TitleText = "You find yourself in front\n" +
		"of gates of a great city.\n" +
		"You hear a call in distress\n" +
		"calling for a hero like you"
	TitlePrompt   = "Press a key to play as\n(b)oy or (g)irl."
	ScoreHeader   = "**** ANT ATTACK ****\n**** SCORE CARD ****"
	ScorePrompt   = "Press ENTER to continue."
	OverBanner    = "GAME  OVER"
	WinBanner     = "WELL DONE!"
	WinText       = "CONGRATULATIONS! You have\nrescued everyone in the city."
	OverPrompt    = "Press ENTER to go back to\ntitle screen."
	HUDLabels     = "AMMO  GIRL  BOY   TIME"
	MutedLabel    = "MUTED"
	FreeLookLabel = "FREE LOOK"
)

var titleBanner = strings.Join([]string{
	`  _   _  _ _____     _ _____ _____ _   ___ _  __`,
	` /_\ | \| |_   _|   /_\_   _|_   _/_\ / __| |/ /`,
	`/ _ \| .  | | |    / _ \| |   | |/ _ \ (__| ' < `,
	`/_/ \_\_|\_| |_|   /_/ \_\_|   |_/_/ \_\___|_|\_\`,
}, "\n")

var (
	cardStyle   = tcell.StyleDefault.Background(RgbYellow).Foreground(tcell.ColorBlack)
	borderStyle = tcell.StyleDefault.Background(RgbMagenta)
	panelStyle  = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbPanelText)
)

// card paints the bordered paper background and returns its text origin
func card(s Surface) (x, y int) {
	w, h := s.Size()
	fill(s, 0, 0, w, h, ' ', borderStyle)
	fill(s, 1, 1, w-2, h-2, ' ', cardStyle)
	return 3, 2
}

func (r *Renderer) drawTitle(s Surface) {
	w, _ := s.Size()
	x, y := card(s)

	text(s, x, y, "WELCOME TO ...", cardStyle)
	banner := cardStyle.Bold(true)
	if textWidth(titleBanner) < w-2 {
		centered(s, w/2, y+2, titleBanner, banner)
	} else {
		centered(s, w/2, y+3, "A N T   A T T A C K", banner)
	}
	text(s, x, y+8, TitleText, cardStyle)
	text(s, x, y+14, TitlePrompt, cardStyle)
}

func (r *Renderer) drawIngame(s Surface, sess *game.Session) {
	w, h := s.Size()
	fill(s, 0, 0, w, h, ' ', tcell.StyleDefault.Background(RgbBackground))

	view := &worldView{
		surface: s,
		camera:  NewCamera(sess.Focus(), w, h-constant.HUDHeight),
		theme:   r.theme,
		width:   w,
		height:  h - constant.HUDHeight,
	}
	view.draw(sess.World())

	r.drawHUD(s, sess.HUD())
}

func (r *Renderer) drawHUD(s Surface, hud game.HUD) {
	w, h := s.Size()

	// Top bar
	fill(s, 0, 0, w, 1, ' ', panelStyle)
	text(s, 1, 0, fmt.Sprintf("SCORE :%d", hud.Score), panelStyle)
	text(s, max(w/2, 16), 0, fmt.Sprintf("Rescued :%d", hud.Rescued), panelStyle)

	if hud.Debug {
		debug := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbDebug)
		text(s, 1, 1, fmt.Sprintf("player: %v  ants: %d", hud.PlayerTile, hud.AliveAnts), debug)
	}

	// Bottom panel
	top := h - constant.HUDHeight
	fill(s, 0, top, w, constant.HUDHeight, ' ', panelStyle)
	fill(s, 0, top, w, 1, ' ', borderStyle)

	values := fmt.Sprintf("%4d  %4d  %4d  %4d", hud.Ammo, hud.GirlHP, hud.BoyHP, hud.RoundTime)
	valueStyle := tcell.StyleDefault.Background(RgbPanelText).Foreground(tcell.ColorBlack)
	text(s, 1, top+1, values, valueStyle)
	text(s, 1, top+2, HUDLabels, panelStyle)
	text(s, textWidth(values)+4, top+1, fmt.Sprintf("ROUND %d/%d", hud.Round+1, hud.RoundCount), panelStyle)

	col := 1
	if hud.Charge > 0 {
		col = chargeBar(s, col, top+3, hud.Charge)
	}
	if hud.FreeLook {
		col = text(s, col, top+3, FreeLookLabel, panelStyle.Foreground(RgbDebug)) + 2
	}
	if r.Muted {
		text(s, col, top+3, MutedLabel, panelStyle.Foreground(RgbRed))
	}
}

// chargeBar draws the bomb throw charge and returns the next free column
func chargeBar(s Surface, x, y int, charge float32) int {
	const width = 10
	filled := int(charge*width + 0.5)
	x = text(s, x, y, "THROW ", panelStyle)
	bar := tcell.StyleDefault.Background(RgbPanel).Foreground(RgbCharge)
	for i := range width {
		r := '░'
		if i < filled {
			r = '█'
		}
		put(s, x+i, y, r, bar)
	}
	return x + width + 2
}

// drawMessage boxes each line of the message over the play view
func (r *Renderer) drawMessage(s Surface, msg engine.Message) {
	var style tcell.Style
	switch msg.Style {
	case engine.MessageAlert:
		style = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbRed).Bold(true)
	case engine.MessageInfo:
		style = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbCyan)
	default:
		style = tcell.StyleDefault.Background(RgbYellow).Foreground(tcell.ColorBlack)
	}

	pad := constant.MessageBoxPadding
	for i, line := range strings.Split(msg.Text, "\n") {
		y := constant.MessageTop + i
		fill(s, 2, y, textWidth(line)+2*pad, 1, ' ', style)
		text(s, 2+pad, y, line, style)
	}
}

// scoreBlink reports the blink phase of the score highlight at the session clock
func scoreBlink(sess *game.Session) bool {
	return int(sess.Clock().Seconds()*constant.ScoreBlinkRate)%2 == 1
}

func (r *Renderer) drawScore(s Surface, sess *game.Session) {
	w, _ := s.Size()
	x, y := card(s)
	hud := sess.HUD()
	right := max(x+20, w-12)

	centered(s, w/2, y, ScoreHeader, panelStyle)

	blue := cardStyle.Foreground(RgbBlue)
	text(s, x, y+4, "LIVES SAVED :", blue)
	text(s, right, y+4, strconv.Itoa(hud.Rescued), blue)
	text(s, x, y+6, "TIME LEFT   :", blue)
	text(s, right, y+6, strconv.Itoa(hud.RoundTime), blue)

	score := strconv.Itoa(hud.Score)
	text(s, x, y+9, "TOTAL SCORE :", cardStyle)
	if scoreBlink(sess) {
		fill(s, right-1, y+8, len(score)+2, 3, ' ', tcell.StyleDefault.Background(RgbCyan))
	}
	text(s, right, y+9, score, cardStyle)

	_, h := s.Size()
	text(s, x, h-4, ScorePrompt, cardStyle)
}

func (r *Renderer) drawOver(s Surface, sess *game.Session) {
	w, h := s.Size()
	x, y := card(s)
	hud := sess.HUD()
	right := max(x+20, w-12)

	if sess.Won() {
		fill(s, 2, y, w-4, 3, ' ', panelStyle)
		centered(s, w/2, y+1, WinBanner, panelStyle.Bold(true))
		text(s, x, y+5, WinText, cardStyle)
	} else {
		centered(s, w/2, y+1, OverBanner, cardStyle.Foreground(RgbRed).Bold(true))
		text(s, x, y+5, sess.Message().Text, cardStyle)
	}

	text(s, x, y+9, "LIVES SAVED :", cardStyle)
	text(s, right, y+9, strconv.Itoa(hud.Rescued), cardStyle)
	text(s, x, y+11, "TOTAL SCORE :", cardStyle)
	text(s, right, y+11, strconv.Itoa(hud.Score), cardStyle)

	text(s, x, h-5, OverPrompt, cardStyle)
}
