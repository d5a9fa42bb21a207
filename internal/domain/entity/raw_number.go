package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RawNumber conserva el valor numérico tal como llegó del backend.
// El backend mezcla números JSON y cadenas ("12.50"); la conversión a decimal
// la hace sales.ParseNumber con reglas tolerantes.
type RawNumber string

// UnmarshalJSON acepta números, cadenas y null. Cualquier otro tipo JSON se
// guarda vacío (equivale a 0) en lugar de fallar la decodificación del lote.
func (n *RawNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = RawNumber(strings.TrimSpace(s))
	case '{', '[', 't', 'f':
		*n = ""
	default:
		*n = RawNumber(b)
	}
	return nil
}

// MarshalJSON emite el valor como cadena, o null si está vacío.
func (n RawNumber) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(n))
}

// IsEmpty indica que el campo no vino en el registro.
func (n RawNumber) IsEmpty() bool { return strings.TrimSpace(string(n)) == "" }

func (n RawNumber) String() string { return string(n) }
