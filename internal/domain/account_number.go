package domain

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"
)

// accountNumberDigits is the fixed width of generated account numbers.
const accountNumberDigits = 10

// GenerateAccountNumber returns a random, fixed-width numeric account
// number. Uniqueness is enforced by the accounts table, not here; this is a
// pure generation function with no collision handling.
func GenerateAccountNumber() string {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(accountNumberDigits), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand should never fail; fall back to a time-derived number
		// rather than returning an empty string.
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
		n = new(big.Int).SetBytes(buf[:])
		n.Mod(n, max)
	}
	return fmt.Sprintf("%0*d", accountNumberDigits, n)
}
