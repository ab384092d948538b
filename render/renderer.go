package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/game"
)

// Theme holds the configurable look of the play view
type Theme struct {
	Block   tcell.Color
	Shading bool // Darken lower layers
}

// DefaultTheme returns the stock block color with shading on
func DefaultTheme() Theme {
	return Theme{Block: tcell.GetColor(constant.DefaultBlockColor), Shading: true}
}

// ThemeFrom builds a theme from a "#rrggbb" block color, falling back to the default color
func ThemeFrom(blockColor string, shading bool) Theme {
	t := DefaultTheme()
	t.Shading = shading
	if c := tcell.GetColor(blockColor); c != tcell.ColorDefault {
		t.Block = c
	}
	return t
}

// Renderer draws a session to a surface, one full frame per call
type Renderer struct {
	theme Theme
	Muted bool // Shown in the HUD
}

// NewRenderer creates a renderer with the given theme
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Draw renders the screen for the session's interface state
func (r *Renderer) Draw(s Surface, sess *game.Session) {
	switch sess.State() {
	case game.StateTitle:
		r.drawTitle(s)
	case game.StateIngame, game.StateFreeze:
		r.drawIngame(s, sess)
	case game.StateIngameMessage:
		r.drawIngame(s, sess)
		r.drawMessage(s, sess.Message())
	case game.StateShowScore:
		r.drawScore(s, sess)
	case game.StateOver:
		r.drawOver(s, sess)
	}
}
