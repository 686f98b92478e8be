package term

import (
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/forslund/cgdb-kui/key"
)

// prettyPrinter is configured once with colors disabled, since Pretty's
// output is meant for log lines and test failure messages, not an
// interactive terminal.
var prettyPrinter = func() *pp.PrettyPrinter {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p
}()

// Pretty renders a key sequence as its named-key/literal-byte form, e.g.
// "<ESC>[A" or "<UP>". It is the optional diagnostic inverse of Symbolize
// mentioned in spec §6 and is never on a matching hot path.
func Pretty(s key.Sequence) string {
	var b strings.Builder
	for i := 0; i < key.Len(s); i++ {
		tok := s[i]
		if name, ok := tokenNames[tok]; ok {
			b.WriteByte('<')
			b.WriteString(name)
			b.WriteByte('>')
			continue
		}
		if tok == key.Token('<') {
			b.WriteString("<LT>")
			continue
		}
		if tok >= 0x20 && tok < 0x7f {
			b.WriteByte(byte(tok))
			continue
		}
		b.WriteString(prettyPrinter.Sprint(int32(tok)))
	}
	return b.String()
}
