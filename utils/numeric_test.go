package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"number", `{"amount": 2380}`, 2380},
		{"decimal number", `{"amount": 1999.9}`, 1999.9},
		{"string", `{"amount": "2380"}`, 2380},
		{"string decimal", `{"amount": "50000.50"}`, 50000.50},
		{"string with spaces", `{"amount": " 120 "}`, 120},
		{"null", `{"amount": null}`, 0},
		{"empty string", `{"amount": ""}`, 0},
		{"absent", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Amount FlexFloat `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.json), &payload))
			assert.Equal(t, tt.want, payload.Amount.Float64())
		})
	}
}

func TestFlexFloatUnmarshalRejectsGarbage(t *testing.T) {
	var payload struct {
		Amount FlexFloat `json:"amount"`
	}
	err := json.Unmarshal([]byte(`{"amount": "dos mil"}`), &payload)
	assert.Error(t, err)
}
