// file: internals/helpers/share_token_test.go
package helper

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShareToken(t *testing.T) {
	token, err := GenerateShareToken()
	require.NoError(t, err)
	assert.Len(t, token, ShareTokenBytes*2)

	// harus hex valid
	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
}

func TestGenerateShareToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateShareToken()
		require.NoError(t, err)
		assert.False(t, seen[token], "token kembar: %s", token)
		seen[token] = true
	}
}
