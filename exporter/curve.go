package exporter

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	fp_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	fp_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// Curve identifier strings as SnarkJS spells them. Note that SnarkJS calls
// BN254 "bn128"; this mapping is an external contract, not a choice.
const (
	CurveNameBN254    = "bn128"
	CurveNameBLS12381 = "bls12381"
)

var (
	// ErrUnsupportedCurve is returned when an artifact belongs to a curve
	// other than BN254 or BLS12-381.
	ErrUnsupportedCurve = errors.New("unsupported curve")
	// ErrMalformedPoint is returned when a non-identity point does not
	// satisfy the curve equation, which means the upstream library handed
	// us a corrupted value.
	ErrMalformedPoint = errors.New("malformed curve point")
	// ErrPublicInputCountMismatch is returned when the declared number of
	// public inputs disagrees with the verifying key's IC array.
	ErrPublicInputCountMismatch = errors.New("public input count mismatch")
)

// curveParams is the closed per-curve table: the SnarkJS curve name, the
// number of coefficients of a G2 coordinate, and the base field modulus.
// The encoders bind the extension degree and modulus statically through
// gnark-crypto's per-curve types; the table is the single place that
// records these facts per supported curve, and the adapter tests pin them
// against their published values.
type curveParams struct {
	name              string
	g2ExtensionDegree int
	fp                *big.Int
}

func curveParamsFor(id ecc.ID) (curveParams, error) {
	switch id {
	case ecc.BN254:
		return curveParams{name: CurveNameBN254, g2ExtensionDegree: 2, fp: fp_bn254.Modulus()}, nil
	case ecc.BLS12_381:
		return curveParams{name: CurveNameBLS12381, g2ExtensionDegree: 2, fp: fp_bls12381.Modulus()}, nil
	default:
		return curveParams{}, fmt.Errorf("%w: %s", ErrUnsupportedCurve, id.String())
	}
}

// CurveName returns the SnarkJS identifier for the given curve.
func CurveName(id ecc.ID) (string, error) {
	params, err := curveParamsFor(id)
	if err != nil {
		return "", err
	}
	return params.name, nil
}

// CurveByName resolves a SnarkJS curve identifier ("bn128" or "bls12381")
// back to its gnark-crypto curve ID.
func CurveByName(name string) (ecc.ID, error) {
	switch name {
	case CurveNameBN254:
		return ecc.BN254, nil
	case CurveNameBLS12381:
		return ecc.BLS12_381, nil
	default:
		return ecc.UNKNOWN, fmt.Errorf("%w: %q", ErrUnsupportedCurve, name)
	}
}
