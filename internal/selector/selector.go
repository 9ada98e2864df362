// Package selector computes the 4-byte Keccak-256 function selector used
// by Function declarations. It wraps the Ethereum-flavored Keccak
// (golang.org/x/crypto/sha3's "legacy" variant, not NIST SHA3-256) behind
// the init/update/finalize contract the parser needs and nothing more.
package selector

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Compute returns the first 4 bytes of Keccak-256("name(t1,t2,...)"). An
// empty inputTypes hashes "name()".
func Compute(name string, inputTypes []string) [4]byte {
	sig := fmt.Sprintf("%s(%s)", name, strings.Join(inputTypes, ","))

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(sig))
	sum := h.Sum(nil)

	var out [4]byte
	copy(out[:], sum[:4])
	return out
}
