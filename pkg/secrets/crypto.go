package secrets

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"unicode/utf8"

	serrors "github.com/asokolsky/secretsettings/pkg/errors"
)

// zeroIV is shared by every operation for compatibility with existing ciphertexts.
var zeroIV = make([]byte, aes.BlockSize)

// ValidateKey checks that key selects one of AES-128, AES-192 or AES-256.
func ValidateKey(key []byte) error {
	switch len(key) {
	case 16, 24, 32:
		return nil
	}
	return serrors.New(serrors.KindKeyLength,
		"Bad decryption key length %d - should be 16 or 24 or 32", len(key))
}

// Encrypt pads plaintext and encrypts it with AES-CBC under key.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, serrors.Wrap(serrors.KindKeyLength, err, "Failed to create cipher: %v", err)
	}

	padded := pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, zeroIV).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// Decrypt decrypts an AES-CBC ciphertext under key and strips its padding.
// Wrong keys and corrupted input are reported as errors rather than garbage.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, serrors.New(serrors.KindDecrypt,
			"ciphertext length %d is not a multiple of %d", len(ciphertext), aes.BlockSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, serrors.Wrap(serrors.KindKeyLength, err, "Failed to create cipher: %v", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, zeroIV).CryptBlocks(plaintext, ciphertext)
	return unpad(plaintext, aes.BlockSize)
}

// EncryptString encrypts a UTF-8 string and returns its base64 form.
func EncryptString(plaintext string, key []byte) (string, error) {
	ciphertext, err := Encrypt([]byte(plaintext), key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptString decodes a base64 ciphertext and returns the UTF-8 plaintext.
func DecryptString(encoded string, key []byte) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", serrors.Wrap(serrors.KindDecrypt, err, "invalid base64 ciphertext: %v", err)
	}
	plaintext, err := Decrypt(ciphertext, key)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", serrors.New(serrors.KindDecrypt, "decrypted value is not valid UTF-8")
	}
	return string(plaintext), nil
}

func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, serrors.New(serrors.KindDecrypt, "padding is incorrect")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, serrors.New(serrors.KindDecrypt, "padding is incorrect")
		}
	}
	return data[:len(data)-n], nil
}
