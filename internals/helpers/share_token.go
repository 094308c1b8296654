// file: internals/helpers/share_token.go
package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ShareTokenBytes = 128 bit randomness → 32 karakter hex.
const ShareTokenBytes = 16

// GenerateShareToken bikin token opaque untuk lookup reservasi tanpa login.
func GenerateShareToken() (string, error) {
	buf := make([]byte, ShareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
