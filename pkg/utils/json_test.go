package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	out := PrettyJson(map[string]int{"reach": 1000})
	assert.Contains(t, out, "\"reach\": 1000")

	// []byte já serializado é apenas indentado
	out = PrettyJson([]byte(`{"ok":true}`))
	assert.Contains(t, out, "\"ok\": true")

	// bytes que não são JSON voltam como estavam
	assert.Equal(t, "não é json", PrettyJson([]byte("não é json")))
}
