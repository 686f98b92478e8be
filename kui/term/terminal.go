package term

import "github.com/forslund/cgdb-kui/kui"

// terminalMappings is a small, real xterm/vt100 subset: cursor keys in both
// normal and application (DECCKM) mode, F1-F4 in their ESC O P..S encoding,
// F5-F12 in their ESC [ nn ~ encoding, and the
// handful of escape sequences every terminal-handling program ends up
// needing. This is the Go-native stand-in for cgdb's terminfo-driven
// kui_term_get_terminal_mappings, which spec §1 places out of scope as "the
// translation tables between raw escape byte sequences and named logical
// keys (treated as a provided table)" — here it is provided concretely so
// Manager produces a working pipeline without external wiring.
//
// seq holds the literal ESC byte (0x1B), not the "<ESC>" escape name: it is
// matched against what a terminal actually sends, not a symbolized named
// key, so it must symbolize to the same literal byte TTYSource reads.
var terminalMappings = []struct {
	seq   string
	named string
}{
	{"\x1b[A", "<UP>"},
	{"\x1b[B", "<DOWN>"},
	{"\x1b[C", "<RIGHT>"},
	{"\x1b[D", "<LEFT>"},
	{"\x1b[H", "<HOME>"},
	{"\x1b[F", "<END>"},
	{"\x1bOA", "<UP>"},    // application mode
	{"\x1bOB", "<DOWN>"},  // application mode
	{"\x1bOC", "<RIGHT>"}, // application mode
	{"\x1bOD", "<LEFT>"},  // application mode
	{"\x1bOH", "<HOME>"},  // application mode
	{"\x1bOF", "<END>"},   // application mode
	{"\x1b[2~", "<INSERT>"},
	{"\x1b[3~", "<DEL>"},
	{"\x1b[5~", "<PGUP>"},
	{"\x1b[6~", "<PGDN>"},
	{"\x1bOP", "<F1>"},
	{"\x1bOQ", "<F2>"},
	{"\x1bOR", "<F3>"},
	{"\x1bOS", "<F4>"},
	{"\x1b[15~", "<F5>"},
	{"\x1b[17~", "<F6>"},
	{"\x1b[18~", "<F7>"},
	{"\x1b[19~", "<F8>"},
	{"\x1b[20~", "<F9>"},
	{"\x1b[21~", "<F10>"},
	{"\x1b[23~", "<F11>"},
	{"\x1b[24~", "<F12>"},
}

// TerminalMapSet builds the map set Manager preloads into its terminal-layer
// context: raw escape byte sequences to named logical key tokens.
func TerminalMapSet() *kui.MapSet {
	ms := kui.NewMapSet(Symbolize)
	for _, m := range terminalMappings {
		if err := ms.Register(m.seq, m.named); err != nil {
			// The table above is a fixed, compile-time-checked literal;
			// a failure here means the table itself is malformed.
			panic("kui/term: invalid built-in terminal mapping " + m.seq + ": " + err.Error())
		}
	}
	return ms
}
