package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
)

// MontoOpcional debe aceptar número, cadena numérica, "" y null.
func TestMontoOpcional_Coercion(t *testing.T) {
	type payload struct {
		Precio dto.MontoOpcional `json:"precio"`
	}

	cases := []struct {
		nombre   string
		json     string
		esperado string // "" significa nil
	}{
		{"numero", `{"precio": 12.5}`, "12.5"},
		{"numero entero", `{"precio": 40}`, "40"},
		{"cadena numerica", `{"precio": "99.90"}`, "99.9"},
		{"cadena vacia", `{"precio": ""}`, ""},
		{"null", `{"precio": null}`, ""},
		{"ausente", `{}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tc.json), &p))
			if tc.esperado == "" {
				assert.Nil(t, p.Precio.Valor)
			} else {
				require.NotNil(t, p.Precio.Valor)
				assert.Equal(t, tc.esperado, p.Precio.Valor.String())
			}
		})
	}
}

func TestMontoOpcional_CadenaNoNumerica(t *testing.T) {
	var m dto.MontoOpcional
	err := json.Unmarshal([]byte(`"doce"`), &m)
	assert.Error(t, err, "una cadena no numérica debe rechazarse")
}

func TestMontoOpcional_ODecimal_NilEsCero(t *testing.T) {
	var m dto.MontoOpcional
	assert.True(t, m.ODecimal().IsZero())
}

// Texto debe aceptar tanto cadena como número (los formularios mandan ambos).
func TestTexto_Coercion(t *testing.T) {
	type payload struct {
		Documento dto.Texto `json:"documento"`
	}

	var conCadena, conNumero, conNull payload
	require.NoError(t, json.Unmarshal([]byte(`{"documento": "12345678"}`), &conCadena))
	require.NoError(t, json.Unmarshal([]byte(`{"documento": 12345678}`), &conNumero))
	require.NoError(t, json.Unmarshal([]byte(`{"documento": null}`), &conNull))

	assert.Equal(t, "12345678", string(conCadena.Documento))
	assert.Equal(t, "12345678", string(conNumero.Documento))
	assert.Equal(t, "", string(conNull.Documento))
}

func TestRespuesta_Envelope(t *testing.T) {
	ok := dto.OK(map[string]string{"id": "x"})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Count)

	lista := dto.OKConteo([]int{1, 2, 3}, 3)
	require.NotNil(t, lista.Count)
	assert.Equal(t, 3, *lista.Count)

	fallo := dto.Fallo("algo salió mal")
	assert.False(t, fallo.Success)
	assert.Equal(t, "algo salió mal", fallo.Message)
}
