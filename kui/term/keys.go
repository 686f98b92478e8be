// Package term supplies the concrete symbolization table and terminal
// escape-sequence map set that spec §4.5 and §6 describe as externally
// provided: parsing <NAME> escapes into named logical key tokens, and a
// small real xterm/vt100 table translating raw escape byte sequences into
// those tokens.
package term

import "github.com/forslund/cgdb-kui/key"

// NamedKeyBase is the first token value of the named-logical-key range.
// It sits above any possible raw byte (0-255), giving the union alphabet
// spec §3 requires: ordinary input codepoints and named keys share one
// integer space but occupy disjoint ranges.
const NamedKeyBase key.Token = 0x100

// Named logical keys, in the disjoint range above NamedKeyBase.
const (
	Esc key.Token = NamedKeyBase + iota
	Up
	Down
	Left
	Right
	Home
	End
	Delete
	Insert
	PageUp
	PageDown
	Tab
	Backspace
	CarriageReturn
	Space
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// names maps a <NAME> escape (without the angle brackets) to its token.
var names = map[string]key.Token{
	"NUL":     key.RawNUL,
	"ESC":     Esc,
	"UP":      Up,
	"DOWN":    Down,
	"LEFT":    Left,
	"RIGHT":   Right,
	"HOME":    Home,
	"END":     End,
	"DEL":     Delete,
	"INSERT":  Insert,
	"PGUP":    PageUp,
	"PGDN":    PageDown,
	"TAB":     Tab,
	"BS":      Backspace,
	"CR":      CarriageReturn,
	"SPACE":   Space,
	"F1":      F1,
	"F2":      F2,
	"F3":      F3,
	"F4":      F4,
	"F5":      F5,
	"F6":      F6,
	"F7":      F7,
	"F8":      F8,
	"F9":      F9,
	"F10":     F10,
	"F11":     F11,
	"F12":     F12,
}

// tokenNames is the reverse of names, built once for Pretty.
var tokenNames = func() map[key.Token]string {
	m := make(map[key.Token]string, len(names))
	for name, tok := range names {
		m[tok] = name
	}
	return m
}()
