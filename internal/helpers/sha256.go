package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// shortIDLength is the number of hex characters kept by ShortID.
const shortIDLength = 12

func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

func SHA256Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}

func SHA256Reader(reader io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// ShortID is a stable content identifier used to label scripts in logs.
func ShortID(content string) string {
	return SHA256(content)[:shortIDLength]
}
