package exporter

import (
	"math/big"
	"testing"
)

// decToBigInt parses the decimal output of the encoders back into a big.Int.
func decToBigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("failed to parse decimal string %q", s)
	}
	return bi
}
