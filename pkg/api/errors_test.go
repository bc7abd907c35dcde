package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorDetail_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantString string
	}{
		{
			name:       "plain string detail",
			body:       `{"detail": "lote não encontrado"}`,
			wantString: "lote não encontrado",
		},
		{
			name:       "single field error",
			body:       `{"detail": [{"loc": ["body", "nome"], "msg": "field required"}]}`,
			wantString: "body.nome: field required",
		},
		{
			name: "multiple field errors",
			body: `{"detail": [
				{"loc": ["body", "nome"], "msg": "field required"},
				{"loc": ["body", "email"], "msg": "value is not a valid email address"}
			]}`,
			wantString: "body.nome: field required; body.email: value is not a valid email address",
		},
		{
			name:       "field error without location",
			body:       `{"detail": [{"loc": [], "msg": "invalid payload"}]}`,
			wantString: "invalid payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body ErrorBody
			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.wantString, body.Detail.String())
		})
	}
}

func TestErrorDetail_UnmarshalJSON_Invalid(t *testing.T) {
	var body ErrorBody
	err := json.Unmarshal([]byte(`{"detail": 42}`), &body)
	assert.Error(t, err)
}

func TestErrorDetail_MarshalJSON(t *testing.T) {
	plain := ErrorDetail{Message: "not found"}
	data, err := json.Marshal(plain)
	require.NoError(t, err)
	assert.JSONEq(t, `"not found"`, string(data))

	fields := ErrorDetail{Fields: []FieldError{{Loc: []string{"body", "nome"}, Msg: "field required"}}}
	data, err = json.Marshal(fields)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"loc":["body","nome"],"msg":"field required"}]`, string(data))
}
