package exporter

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	groth16_bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
	"github.com/consensys/gnark/backend/witness"
)

// g1ToCircomBLS12381 converts a bls12-381 G1 point to the SnarkJS triple
// [x, y, "1"] of decimal strings.
func g1ToCircomBLS12381(p *curve.G1Affine) ([]string, error) {
	if p == nil {
		return nil, fmt.Errorf("nil G1 point")
	}
	if p.IsInfinity() {
		return g1Infinity(), nil
	}
	if !p.IsOnCurve() {
		return nil, fmt.Errorf("%w: G1 point not on bls12-381", ErrMalformedPoint)
	}
	return []string{fToDec(&p.X), fToDec(&p.Y), "1"}, nil
}

// g2ToCircomBLS12381 converts a bls12-381 G2 point to the SnarkJS form
// [[x.c0, x.c1], [y.c0, y.c1], ["1", "0"]], c0 first.
func g2ToCircomBLS12381(p *curve.G2Affine) ([][]string, error) {
	if p == nil {
		return nil, fmt.Errorf("nil G2 point")
	}
	if p.IsInfinity() {
		return g2Infinity(), nil
	}
	if !p.IsOnCurve() {
		return nil, fmt.Errorf("%w: G2 point not on bls12-381 twist", ErrMalformedPoint)
	}
	return [][]string{
		{fToDec(&p.X.A0), fToDec(&p.X.A1)},
		{fToDec(&p.Y.A0), fToDec(&p.Y.A1)},
		{"1", "0"},
	}, nil
}

// g1JacToCircomBLS12381 normalizes a Jacobian G1 point to affine before
// encoding. Z == 0 is the library's identity representation.
func g1JacToCircomBLS12381(p *curve.G1Jac) ([]string, error) {
	if p == nil {
		return nil, fmt.Errorf("nil G1 point")
	}
	if p.Z.IsZero() {
		return g1Infinity(), nil
	}
	var aff curve.G1Affine
	aff.FromJacobian(p)
	return g1ToCircomBLS12381(&aff)
}

// g2JacToCircomBLS12381 normalizes a Jacobian G2 point to affine before
// encoding.
func g2JacToCircomBLS12381(p *curve.G2Jac) ([][]string, error) {
	if p == nil {
		return nil, fmt.Errorf("nil G2 point")
	}
	if p.Z.IsZero() {
		return g2Infinity(), nil
	}
	var aff curve.G2Affine
	aff.FromJacobian(p)
	return g2ToCircomBLS12381(&aff)
}

// gtToCircomBLS12381 flattens a GT element into the 2x3x2 nesting used by
// vk_alphabeta_12. The bls12-381 Fp12 tower has the same shape as bn254's.
func gtToCircomBLS12381(gt *curve.GT) [][][]string {
	return [][][]string{
		{
			{fToDec(&gt.C0.B0.A0), fToDec(&gt.C0.B0.A1)},
			{fToDec(&gt.C0.B1.A0), fToDec(&gt.C0.B1.A1)},
			{fToDec(&gt.C0.B2.A0), fToDec(&gt.C0.B2.A1)},
		},
		{
			{fToDec(&gt.C1.B0.A0), fToDec(&gt.C1.B0.A1)},
			{fToDec(&gt.C1.B1.A0), fToDec(&gt.C1.B1.A1)},
			{fToDec(&gt.C1.B2.A0), fToDec(&gt.C1.B2.A1)},
		},
	}
}

// publicSignalsBLS12381 extracts the public witness values as ordered
// decimal strings.
func publicSignalsBLS12381(publicWitness witness.Witness) ([]string, error) {
	vec, ok := publicWitness.Vector().(fr.Vector)
	if !ok {
		return nil, fmt.Errorf("expected bls12-381 public witness vector, got %T", publicWitness.Vector())
	}
	signals := make([]string, len(vec))
	for i := range vec {
		signals[i] = fToDec(&vec[i])
	}
	return signals, nil
}

// proofToCircomBLS12381 assembles the SnarkJS proof document from a gnark
// bls12-381 proof.
func proofToCircomBLS12381(proof *groth16_bls12381.Proof, publicSignals []string) (*CircomProof, error) {
	if len(proof.Commitments) > 0 {
		return nil, fmt.Errorf("proof carries %d Pedersen commitments, which the SnarkJS format cannot represent", len(proof.Commitments))
	}
	piA, err := g1ToCircomBLS12381(&proof.Ar)
	if err != nil {
		return nil, fmt.Errorf("failed to convert proof.Ar: %w", err)
	}
	piB, err := g2ToCircomBLS12381(&proof.Bs)
	if err != nil {
		return nil, fmt.Errorf("failed to convert proof.Bs: %w", err)
	}
	piC, err := g1ToCircomBLS12381(&proof.Krs)
	if err != nil {
		return nil, fmt.Errorf("failed to convert proof.Krs: %w", err)
	}
	return &CircomProof{
		PiA:           piA,
		PiB:           piB,
		PiC:           piC,
		Protocol:      protocolGroth16,
		Curve:         CurveNameBLS12381,
		PublicSignals: publicSignals,
	}, nil
}

// vkToCircomBLS12381 assembles the SnarkJS verification key document from a
// gnark bls12-381 verifying key. nPublic must equal len(IC)-1.
func vkToCircomBLS12381(vk *groth16_bls12381.VerifyingKey, nPublic int) (*CircomVerificationKey, error) {
	if nPublic < 0 || len(vk.G1.K) != nPublic+1 {
		return nil, fmt.Errorf("%w: nPublic=%d but the verifying key has %d IC points", ErrPublicInputCountMismatch, nPublic, len(vk.G1.K))
	}

	vkAlpha1, err := g1ToCircomBLS12381(&vk.G1.Alpha)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk.G1.Alpha: %w", err)
	}
	vkBeta2, err := g2ToCircomBLS12381(&vk.G2.Beta)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk.G2.Beta: %w", err)
	}
	vkGamma2, err := g2ToCircomBLS12381(&vk.G2.Gamma)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk.G2.Gamma: %w", err)
	}
	vkDelta2, err := g2ToCircomBLS12381(&vk.G2.Delta)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk.G2.Delta: %w", err)
	}

	ic := make([][]string, len(vk.G1.K))
	for i := range vk.G1.K {
		icPoint, err := g1ToCircomBLS12381(&vk.G1.K[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert IC[%d]: %w", i, err)
		}
		ic[i] = icPoint
	}

	gt, err := curve.Pair([]curve.G1Affine{vk.G1.Alpha}, []curve.G2Affine{vk.G2.Beta})
	if err != nil {
		return nil, fmt.Errorf("failed to compute vk_alphabeta_12: %w", err)
	}

	return &CircomVerificationKey{
		Protocol:      protocolGroth16,
		Curve:         CurveNameBLS12381,
		NPublic:       nPublic,
		VkAlpha1:      vkAlpha1,
		VkBeta2:       vkBeta2,
		VkGamma2:      vkGamma2,
		VkDelta2:      vkDelta2,
		IC:            ic,
		VkAlphabeta12: gtToCircomBLS12381(&gt),
	}, nil
}
