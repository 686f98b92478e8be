package term

import (
	"errors"
	"fmt"
	"strings"

	"github.com/forslund/cgdb-kui/key"
)

// ErrParse is returned by Symbolize when a <...> escape is unterminated or
// names a key that is not registered.
var ErrParse = errors.New("kui/term: parse error")

// Symbolize parses an authored key/value string into a zero-terminated
// key.Sequence. Literal bytes pass through unchanged; a <NAME> escape is
// replaced by its named key token; <LT> stands for a literal '<' so a
// mapping can still contain one without being read as the start of an
// escape.
//
// Symbolize has the signature of kui.Symbolizer and is the concrete
// instance Manager wires into every MapSet it builds.
func Symbolize(s string) (key.Sequence, error) {
	var toks []key.Token

	for i := 0; i < len(s); {
		if s[i] != '<' {
			toks = append(toks, key.Token(s[i]))
			i++
			continue
		}

		end := strings.IndexByte(s[i+1:], '>')
		if end == -1 {
			return nil, fmt.Errorf("%w: unterminated escape at %q", ErrParse, s[i:])
		}
		name := s[i+1 : i+1+end]
		if name == "LT" {
			toks = append(toks, key.Token('<'))
			i = i + 1 + end + 1
			continue
		}

		tok, ok := names[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown key name %q", ErrParse, name)
		}
		toks = append(toks, tok)
		i = i + 1 + end + 1
	}

	return key.NewSequence(toks...), nil
}
