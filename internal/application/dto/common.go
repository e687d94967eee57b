package dto

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Respuesta es el sobre uniforme de la API: {success, data|message, count}.
type Respuesta struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(data any) Respuesta {
	return Respuesta{Success: true, Data: data}
}

// OKConteo construye una respuesta exitosa de listado con count.
func OKConteo(data any, count int) Respuesta {
	return Respuesta{Success: true, Data: data, Count: &count}
}

// Fallo construye una respuesta de error con mensaje.
func Fallo(message string) Respuesta {
	return Respuesta{Success: false, Message: message}
}

// MontoOpcional acepta número JSON, cadena numérica, "" o null.
// Cadena vacía y null quedan en nil (columna NULL); lo demás se parsea como decimal.
type MontoOpcional struct {
	Valor *decimal.Decimal
}

// UnmarshalJSON implementa la coerción numérica de entrada.
func (m *MontoOpcional) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		m.Valor = nil
		return nil
	}
	if b[0] == '"' {
		s := string(bytes.Trim(b, `"`))
		if s == "" {
			m.Valor = nil
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("monto inválido: %q", s)
		}
		m.Valor = &d
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("monto inválido: %s", b)
	}
	m.Valor = &d
	return nil
}

// MarshalJSON serializa el valor o null.
func (m MontoOpcional) MarshalJSON() ([]byte, error) {
	if m.Valor == nil {
		return []byte("null"), nil
	}
	return []byte(m.Valor.String()), nil
}

// ODecimal devuelve el valor o cero si es nil.
func (m MontoOpcional) ODecimal() decimal.Decimal {
	if m.Valor == nil {
		return decimal.Zero
	}
	return *m.Valor
}

// Texto acepta un valor JSON que puede llegar como cadena o como número
// (los formularios del frontend no son consistentes). Conserva el texto crudo
// para que el caso de uso decida la coerción.
type Texto string

// UnmarshalJSON acepta string, número o null.
func (t *Texto) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		*t = Texto(bytes.Trim(b, `"`))
		return nil
	}
	*t = Texto(b)
	return nil
}

// MarshalJSON serializa siempre como cadena JSON.
func (t Texto) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", string(t))), nil
}
