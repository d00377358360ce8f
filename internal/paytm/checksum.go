// Package paytm implements the gateway's checksum handshake: an AES-128-CBC
// encrypted, salted SHA-256 digest over the "|"-joined parameter values.
package paytm

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	iv         = "@@@@&&&&####$$$$"
	saltLength = 4

	// checksumField is stripped from the parameter map before verification;
	// the gateway echoes it back alongside the parameters it covers.
	checksumField = "CHECKSUMHASH"
)

var errBadPadding = errors.New("paytm: bad padding")

// GenerateChecksum signs the parameter map with the merchant key and returns
// an opaque base64 string.
func GenerateChecksum(params map[string]string, key string) (string, error) {
	salt, err := randomSalt(saltLength)
	if err != nil {
		return "", err
	}
	return encrypt(calculateHash(paramString(params), salt), key)
}

// VerifyChecksum reports whether checksum was produced over the same
// parameter map with the same merchant key. Any decryption or format
// failure verifies as false.
func VerifyChecksum(params map[string]string, key, checksum string) bool {
	decrypted, err := decrypt(checksum, key)
	if err != nil || len(decrypted) <= saltLength {
		return false
	}
	salt := decrypted[len(decrypted)-saltLength:]
	return calculateHash(paramString(params), salt) == decrypted
}

// paramString joins parameter values in key order, excluding the checksum
// field itself.
func paramString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == checksumField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, params[k])
	}
	return strings.Join(values, "|")
}

func calculateHash(params, salt string) string {
	digest := sha256.Sum256([]byte(params + "|" + salt))
	return hex.EncodeToString(digest[:]) + salt
}

func randomSalt(n int) (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = charset[int(buf[i])%len(charset)]
	}
	return string(buf), nil
}

func encrypt(plaintext, key string) (string, error) {
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return "", fmt.Errorf("paytm: bad merchant key: %w", err)
	}
	padded := pkcs7Pad([]byte(plaintext), block.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, []byte(iv)).CryptBlocks(out, padded)
	return base64.StdEncoding.EncodeToString(out), nil
}

func decrypt(encoded, key string) (string, error) {
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return "", fmt.Errorf("paytm: bad merchant key: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 || len(raw)%block.BlockSize() != 0 {
		return "", errBadPadding
	}
	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, []byte(iv)).CryptBlocks(out, raw)
	return pkcs7Unpad(out, block.BlockSize())
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	pad := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(pad)}, pad)...)
}

func pkcs7Unpad(data []byte, blockSize int) (string, error) {
	pad := int(data[len(data)-1])
	if pad == 0 || pad > blockSize || pad > len(data) {
		return "", errBadPadding
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return "", errBadPadding
		}
	}
	return string(data[:len(data)-pad]), nil
}
