package exporter

import (
	"fmt"
	"os"

	"github.com/vocdoni/go-snark/parsers"
	"github.com/vocdoni/go-snark/verifier"
)

// VerifyExported re-checks exported artifacts with go-snark, a Go
// implementation of the Circom proof system, as an independent sanity check
// that the written files are accepted by a SnarkJS-compatible verifier.
// The parameters are the paths to the proof, verification key, and public
// signals JSON files. go-snark only implements bn128, so verification keys
// for any other curve are rejected.
func VerifyExported(proofPath, verificationKeyPath, publicPath string) (bool, error) {
	proofJSON, err := os.ReadFile(proofPath) //nolint:gosec
	if err != nil {
		return false, err
	}
	vkJSON, err := os.ReadFile(verificationKeyPath) //nolint:gosec
	if err != nil {
		return false, err
	}
	publicJSON, err := os.ReadFile(publicPath) //nolint:gosec
	if err != nil {
		return false, err
	}

	circomVk, err := UnmarshalCircomVerificationKeyJSON(vkJSON)
	if err != nil {
		return false, err
	}
	if circomVk.Curve != CurveNameBN254 {
		return false, fmt.Errorf("%w: go-snark can only verify %s proofs, got %s", ErrUnsupportedCurve, CurveNameBN254, circomVk.Curve)
	}

	public, err := parsers.ParsePublicSignals(publicJSON)
	if err != nil {
		return false, err
	}
	proof, err := parsers.ParseProof(proofJSON)
	if err != nil {
		return false, err
	}
	vk, err := parsers.ParseVk(vkJSON)
	if err != nil {
		return false, err
	}

	return verifier.Verify(vk, proof, public), nil
}
