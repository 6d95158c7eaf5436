package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReply_FirstMatchWins(t *testing.T) {
	r := NewDefaultResponder()

	reply, err := r.Reply("Hola, busco un hospital")
	require.NoError(t, err)
	assert.Equal(t, "hola", reply.Rule)

	reply, err = r.Reply("¿Qué horarios y servicios tiene el hospital?")
	require.NoError(t, err)
	assert.Equal(t, "hospital", reply.Rule)
}

func TestReply_AccentsAndCase(t *testing.T) {
	r := NewDefaultResponder()

	cases := map[string]string{
		"Necesito una CLÍNICA":      "clinica",
		"¿Cuál es mi ubicación?":    "ubicacion",
		"tengo una emergencia":      "emergencia",
		"ver la cobertura del mapa": "cobertura",
		"como llego, que ruta":      "ruta",
	}
	for msg, want := range cases {
		reply, err := r.Reply(msg)
		require.NoError(t, err)
		assert.Equal(t, want, reply.Rule, "message %q", msg)
	}
}

func TestReply_Default(t *testing.T) {
	reply, err := NewDefaultResponder().Reply("gracias")
	require.NoError(t, err)
	assert.Equal(t, "default", reply.Rule)
	assert.Equal(t, DefaultResponse, reply.Text)
}

func TestReply_Empty(t *testing.T) {
	_, err := NewDefaultResponder().Reply("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestReply_CustomRulesOrder(t *testing.T) {
	r := NewResponder([]Rule{
		{Name: "first", Match: Contains("a"), Response: "1"},
		{Name: "second", Match: Contains("ab"), Response: "2"},
	}, "none")

	reply, err := r.Reply("ab")
	require.NoError(t, err)
	assert.Equal(t, "1", reply.Text)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "clinica", Normalize("  Clínica "))
	assert.Equal(t, "ubicacion", Normalize("UBICACIÓN"))
}
