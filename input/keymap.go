package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Action is a game control independent of the key bound to it
type Action uint8

const (
	ActionNone Action = iota
	ActionUp          // -Y
	ActionDown        // +Y
	ActionLeft        // -X
	ActionRight       // +X
	ActionRaise       // Free-look only
	ActionLower       // Free-look only
	ActionBomb
	ActionConfirm
	ActionBoy
	ActionGirl
	ActionDebug
	ActionFreeLook
	ActionMute
	ActionVolumeUp
	ActionVolumeDown
	ActionQuit
	ActionCount
)

// actionRegistry maps canonical action names used in config files to actions
var actionRegistry = map[string]Action{
	"none":        ActionNone,
	"up":          ActionUp,
	"down":        ActionDown,
	"left":        ActionLeft,
	"right":       ActionRight,
	"raise":       ActionRaise,
	"lower":       ActionLower,
	"bomb":        ActionBomb,
	"confirm":     ActionConfirm,
	"boy":         ActionBoy,
	"girl":        ActionGirl,
	"debug":       ActionDebug,
	"free_look":   ActionFreeLook,
	"mute":        ActionMute,
	"volume_up":   ActionVolumeUp,
	"volume_down": ActionVolumeDown,
	"quit":        ActionQuit,
}

// specialKeys maps key names to non-rune tcell keys
var specialKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"backspace": tcell.KeyBackspace2,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
}

// Rune aliases for keys awkward to write as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Keymap resolves key events to actions
type Keymap struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultBindings returns the stock action to key-name bindings
// Arrows and vi motions both steer; h/l step along X, j/k along Y
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"up":          {"up", "k"},
		"down":        {"down", "j"},
		"left":        {"left", "h"},
		"right":       {"right", "l"},
		"raise":       {"pgup", "K"},
		"lower":       {"pgdn", "J"},
		"bomb":        {"space"},
		"confirm":     {"enter"},
		"boy":         {"b"},
		"girl":        {"g"},
		"debug":       {"f3"},
		"free_look":   {"f4"},
		"mute":        {"m"},
		"volume_up":   {"+", "="},
		"volume_down": {"-"},
		"quit":        {"esc", "ctrl+c", "q"},
	}
}

// DefaultKeymap returns the keymap for DefaultBindings
func DefaultKeymap() *Keymap {
	km, err := ParseKeymap(DefaultBindings())
	if err != nil {
		panic(fmt.Sprintf("default keymap: %v", err))
	}
	return km
}

// ParseKeymap builds a keymap from action names to key names
// Unknown actions or keys are errors; a key bound twice is an error
func ParseKeymap(bindings map[string][]string) (*Keymap, error) {
	km := &Keymap{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}

	for name, keys := range bindings {
		action, ok := actionRegistry[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		for _, keyName := range keys {
			if err := km.bind(keyName, action); err != nil {
				return nil, fmt.Errorf("action %q: %w", name, err)
			}
		}
	}
	return km, nil
}

func (km *Keymap) bind(keyName string, action Action) error {
	lower := strings.ToLower(keyName)

	if key, ok := specialKeys[lower]; ok {
		if prev, dup := km.Keys[key]; dup && prev != action {
			return fmt.Errorf("key %q already bound", keyName)
		}
		km.Keys[key] = action
		return nil
	}

	r, ok := runeAliases[lower]
	if !ok {
		if utf8.RuneCountInString(keyName) != 1 {
			return fmt.Errorf("invalid key name %q", keyName)
		}
		r, _ = utf8.DecodeRuneInString(keyName)
	}
	if prev, dup := km.Runes[r]; dup && prev != action {
		return fmt.Errorf("key %q already bound", keyName)
	}
	km.Runes[r] = action
	return nil
}

// Resolve returns the action bound to a key event, ActionNone if unbound
func (km *Keymap) Resolve(ev *tcell.EventKey) Action {
	return km.ResolveKey(ev.Key(), ev.Rune())
}

// ResolveKey looks up a key, r is only consulted for tcell.KeyRune
func (km *Keymap) ResolveKey(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return km.Runes[r]
	}
	return km.Keys[key]
}
