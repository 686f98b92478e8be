package kui

import (
	"fmt"

	"github.com/forslund/cgdb-kui/key"
)

// Symbolizer parses an authored key/value string (which may contain <NAME>
// escapes for named logical keys) into a zero-terminated key.Sequence. It is
// supplied externally — kui/term.Symbolize is the concrete instance used by
// Manager, but the core package only depends on this function type, so it
// never needs to import kui/term itself.
type Symbolizer func(s string) (key.Sequence, error)

// Map is an immutable key/value pair: the key sequence a user must type, and
// the sequence it expands to. Both the authored strings and their parsed
// literal sequences are retained.
type Map struct {
	originalKey   string
	originalValue string
	literalKey    key.Sequence
	literalValue  key.Sequence
}

// NewMap parses keyData and valueData through sym and returns the resulting
// Map. It fails only on a symbolization error (spec §4.2, §7(b)); no partial
// Map is returned on failure.
func NewMap(keyData, valueData string, sym Symbolizer) (*Map, error) {
	literalKey, err := sym(keyData)
	if err != nil {
		return nil, fmt.Errorf("kui: parse key %q: %w", keyData, err)
	}
	literalValue, err := sym(valueData)
	if err != nil {
		return nil, fmt.Errorf("kui: parse value %q: %w", valueData, err)
	}
	return &Map{
		originalKey:   keyData,
		originalValue: valueData,
		literalKey:    literalKey,
		literalValue:  literalValue,
	}, nil
}

// OriginalKey returns the key as authored.
func (m *Map) OriginalKey() string { return m.originalKey }

// OriginalValue returns the value as authored.
func (m *Map) OriginalValue() string { return m.originalValue }

// LiteralKey returns the parsed key token sequence.
func (m *Map) LiteralKey() key.Sequence { return m.literalKey }

// LiteralValue returns the parsed value token sequence.
func (m *Map) LiteralValue() key.Sequence { return m.literalValue }
