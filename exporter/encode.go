package exporter

import "math/big"

// fieldElement is the accessor shared by all gnark-crypto field element
// types (fp/fr of both curves). BigInt converts out of Montgomery form and
// reduces to the canonical residue in [0, modulus).
type fieldElement interface {
	BigInt(*big.Int) *big.Int
}

// fToDec renders a field element as a decimal string, the only integer
// encoding SnarkJS accepts.
func fToDec(e fieldElement) string {
	return e.BigInt(new(big.Int)).String()
}

// g1Infinity is the SnarkJS sentinel for the G1 identity point.
func g1Infinity() []string {
	return []string{"1", "0", "1"}
}

// g2Infinity is the SnarkJS sentinel for the G2 identity point.
func g2Infinity() [][]string {
	return [][]string{{"1", "0"}, {"0", "0"}, {"1", "0"}}
}
