// Package nanoid generates short URL-safe random identifiers, used as
// primary keys for recorded corpus failures.
package nanoid

import "crypto/rand"

// 64 characters (2^6) so each random byte maps to a symbol with a
// single mask, no modulo bias.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

const idLen = 21

// New generates a cryptographically secure 21-character ID using a
// URL-friendly alphabet.
func New() string {
	var buf [idLen]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("nanoid: failed to generate random bytes: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = alphabet[b&63]
	}
	return string(buf[:])
}
