package artifact

import (
	"crypto/sha256"
	"fmt"
	"io"
)

func CalculateChecksum(reader io.Reader) (string, error) {
	shasum := sha256.New()
	if _, err := io.Copy(shasum, reader); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", shasum.Sum(nil)), nil
}
