// Package secrets provides the symmetric encryption used for tagged settings.
//
// # Encrypted Fields
//
// A settings entry whose key is `encrypted-<name>` carries a base64 encoded
// ciphertext. DecryptRealm adds a `<name>` entry holding the plaintext and
// keeps the original `encrypted-<name>` entry untouched:
//
//	in:  {"username": "bob", "encrypted-password": "dOcV7/WfKO9RaK0Y6BbeQg=="}
//	out: {"username": "bob", "encrypted-password": "dOcV7/WfKO9RaK0Y6BbeQg==",
//	      "password": "BigB1gSecret"}
//
// A nil key disables decryption so a file can first be loaded as is, for
// example to read the key itself from another realm.
//
// # Cipher
//
// Values are encrypted with AES in CBC mode and PKCS#7 padding. The key must be
// 16, 24 or 32 bytes long, selecting AES-128, AES-192 or AES-256.
//
// # Security Considerations
//
// The initialization vector is a fixed block of zero bytes and is not stored
// with the ciphertext. Equal plaintexts under the same key therefore produce
// equal ciphertexts. This is non-random-IV CBC, kept so that values encrypted
// by existing tools keep decrypting. Do not use this package as a model for
// general purpose encryption.
//
// Keys are supplied by the caller. This package never generates, stores or
// logs them.
package secrets
