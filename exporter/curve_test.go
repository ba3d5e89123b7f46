package exporter

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"
)

func TestCurveParams(t *testing.T) {
	params, err := curveParamsFor(ecc.BN254)
	require.NoError(t, err)
	require.Equal(t, "bn128", params.name)
	require.Equal(t, 2, params.g2ExtensionDegree)
	require.Equal(t, "21888242871839275222246405745257275088696311157297823662689037894645226208583", params.fp.String())

	params, err = curveParamsFor(ecc.BLS12_381)
	require.NoError(t, err)
	require.Equal(t, "bls12381", params.name)
	require.Equal(t, 2, params.g2ExtensionDegree)
	require.Equal(t, "4002409555221667393417789825735904156556882819939007885332058136124031650490837864442687629129015664037894272559787", params.fp.String())
}

func TestCurveNames(t *testing.T) {
	name, err := CurveName(ecc.BN254)
	require.NoError(t, err)
	require.Equal(t, CurveNameBN254, name)

	name, err = CurveName(ecc.BLS12_381)
	require.NoError(t, err)
	require.Equal(t, CurveNameBLS12381, name)

	id, err := CurveByName("bn128")
	require.NoError(t, err)
	require.Equal(t, ecc.BN254, id)

	id, err = CurveByName("bls12381")
	require.NoError(t, err)
	require.Equal(t, ecc.BLS12_381, id)
}

func TestUnsupportedCurve(t *testing.T) {
	_, err := curveParamsFor(ecc.BLS12_377)
	require.ErrorIs(t, err, ErrUnsupportedCurve)

	_, err = CurveName(ecc.BW6_761)
	require.ErrorIs(t, err, ErrUnsupportedCurve)

	// the gnark-crypto spelling is not the SnarkJS spelling
	_, err = CurveByName("bls12-381")
	require.ErrorIs(t, err, ErrUnsupportedCurve)
	_, err = CurveByName("bn254")
	require.ErrorIs(t, err, ErrUnsupportedCurve)
}
