package exporter

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/backend/witness"
)

// g1ToCircomBN254 converts a bn254 G1 point to the SnarkJS triple
// [x, y, "1"] of decimal strings. The identity point maps to the
// infinity sentinel.
func g1ToCircomBN254(p *curve.G1Affine) ([]string, error) {
	if p == nil {
		return nil, fmt.Errorf("nil G1 point")
	}
	if p.IsInfinity() {
		return g1Infinity(), nil
	}
	if !p.IsOnCurve() {
		return nil, fmt.Errorf("%w: G1 point not on bn254", ErrMalformedPoint)
	}
	return []string{fToDec(&p.X), fToDec(&p.Y), "1"}, nil
}

// g2ToCircomBN254 converts a bn254 G2 point to the SnarkJS form
// [[x.c0, x.c1], [y.c0, y.c1], ["1", "0"]]. Coefficient order is c0 first,
// which is what the SnarkJS verifier expects; swapping it yields a
// structurally valid but wrong pairing element.
func g2ToCircomBN254(p *curve.G2Affine) ([][]string, error) {
	if p == nil {
		return nil, fmt.Errorf("nil G2 point")
	}
	if p.IsInfinity() {
		return g2Infinity(), nil
	}
	if !p.IsOnCurve() {
		return nil, fmt.Errorf("%w: G2 point not on bn254 twist", ErrMalformedPoint)
	}
	return [][]string{
		{fToDec(&p.X.A0), fToDec(&p.X.A1)},
		{fToDec(&p.Y.A0), fToDec(&p.Y.A1)},
		{"1", "0"},
	}, nil
}

// g1JacToCircomBN254 normalizes a Jacobian G1 point to affine before
// encoding. Z == 0 is the library's identity representation.
func g1JacToCircomBN254(p *curve.G1Jac) ([]string, error) {
	if p == nil {
		return nil, fmt.Errorf("nil G1 point")
	}
	if p.Z.IsZero() {
		return g1Infinity(), nil
	}
	var aff curve.G1Affine
	aff.FromJacobian(p)
	return g1ToCircomBN254(&aff)
}

// g2JacToCircomBN254 normalizes a Jacobian G2 point to affine before
// encoding.
func g2JacToCircomBN254(p *curve.G2Jac) ([][]string, error) {
	if p == nil {
		return nil, fmt.Errorf("nil G2 point")
	}
	if p.Z.IsZero() {
		return g2Infinity(), nil
	}
	var aff curve.G2Affine
	aff.FromJacobian(p)
	return g2ToCircomBN254(&aff)
}

// gtToCircomBN254 flattens a GT element (Fp12 tower) into the 2x3x2
// decimal string nesting SnarkJS uses for vk_alphabeta_12.
func gtToCircomBN254(gt *curve.GT) [][][]string {
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

// publicSignalsBN254 extracts the public witness values as ordered decimal
// strings.
func publicSignalsBN254(publicWitness witness.Witness) ([]string, error) {
	vec, ok := publicWitness.Vector().(fr.Vector)
	if !ok {
		return nil, fmt.Errorf("expected bn254 public witness vector, got %T", publicWitness.Vector())
	}
	signals := make([]string, len(vec))
	for i := range vec {
		signals[i] = fToDec(&vec[i])
	}
	return signals, nil
}

// proofToCircomBN254 assembles the SnarkJS proof document from a gnark
// bn254 proof.
func proofToCircomBN254(proof *groth16_bn254.Proof, publicSignals []string) (*CircomProof, error) {
	if len(proof.Commitments) > 0 {
		return nil, fmt.Errorf("proof carries %d Pedersen commitments, which the SnarkJS format cannot represent", len(proof.Commitments))
	}
	piA, err := g1ToCircomBN254(&proof.Ar)
	if err != nil {
		return nil, fmt.Errorf("failed to convert proof.Ar: %w", err)
	}
	piB, err := g2ToCircomBN254(&proof.Bs)
	if err != nil {
		return nil, fmt.Errorf("failed to convert proof.Bs: %w", err)
	}
	piC, err := g1ToCircomBN254(&proof.Krs)
	if err != nil {
		return nil, fmt.Errorf("failed to convert proof.Krs: %w", err)
	}
	return &CircomProof{
		PiA:           piA,
		PiB:           piB,
		PiC:           piC,
		Protocol:      protocolGroth16,
		Curve:         CurveNameBN254,
		PublicSignals: publicSignals,
	}, nil
}

// vkToCircomBN254 assembles the SnarkJS verification key document from a
// gnark bn254 verifying key. nPublic must equal len(IC)-1.
func vkToCircomBN254(vk *groth16_bn254.VerifyingKey, nPublic int) (*CircomVerificationKey, error) {
	if nPublic < 0 || len(vk.G1.K) != nPublic+1 {
		return nil, fmt.Errorf("%w: nPublic=%d but the verifying key has %d IC points", ErrPublicInputCountMismatch, nPublic, len(vk.G1.K))
	}

	vkAlpha1, err := g1ToCircomBN254(&vk.G1.Alpha)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk.G1.Alpha: %w", err)
	}
	vkBeta2, err := g2ToCircomBN254(&vk.G2.Beta)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk.G2.Beta: %w", err)
	}
	vkGamma2, err := g2ToCircomBN254(&vk.G2.Gamma)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk.G2.Gamma: %w", err)
	}
	vkDelta2, err := g2ToCircomBN254(&vk.G2.Delta)
	if err != nil {
		return nil, fmt.Errorf("failed to convert vk.G2.Delta: %w", err)
	}

	ic := make([][]string, len(vk.G1.K))
	for i := range vk.G1.K {
		icPoint, err := g1ToCircomBN254(&vk.G1.K[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert IC[%d]: %w", i, err)
		}
		ic[i] = icPoint
	}

	// vk_alphabeta_12 = e(vk_alpha_1, vk_beta_2); SnarkJS writes it in
	// every vkey even though its verifier recomputes the pairing.
	gt, err := curve.Pair([]curve.G1Affine{vk.G1.Alpha}, []curve.G2Affine{vk.G2.Beta})
	if err != nil {
		return nil, fmt.Errorf("failed to compute vk_alphabeta_12: %w", err)
	}

	return &CircomVerificationKey{
		Protocol:      protocolGroth16,
		Curve:         CurveNameBN254,
		NPublic:       nPublic,
		VkAlpha1:      vkAlpha1,
		VkBeta2:       vkBeta2,
		VkGamma2:      vkGamma2,
		VkDelta2:      vkDelta2,
		IC:            ic,
		VkAlphabeta12: gtToCircomBN254(&gt),
	}, nil
}
