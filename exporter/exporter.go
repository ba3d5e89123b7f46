// Package exporter converts Groth16 proofs and verifying keys produced by
// Gnark into the JSON format written and verified by SnarkJS, for the BN254
// and BLS12-381 curves. Points are normalized to affine coordinates and
// rendered as decimal-string big integers, matching the field names and
// array nesting the SnarkJS verifier parses.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	fr_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bls12381 "github.com/consensys/gnark/backend/groth16/bls12-381"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/logger"
)

const protocolGroth16 = "groth16"

// ProofToCircom converts a gnark Groth16 proof into the SnarkJS proof
// structure. publicWitness supplies the public signals embedded in the
// document; it may be nil, in which case the public_signals field is
// omitted.
func ProofToCircom(proof groth16.Proof, publicWitness witness.Witness) (*CircomProof, error) {
	switch p := proof.(type) {
	case *groth16_bn254.Proof:
		var signals []string
		if publicWitness != nil {
			var err error
			if signals, err = publicSignalsBN254(publicWitness); err != nil {
				return nil, err
			}
		}
		return proofToCircomBN254(p, signals)
	case *groth16_bls12381.Proof:
		var signals []string
		if publicWitness != nil {
			var err error
			if signals, err = publicSignalsBLS12381(publicWitness); err != nil {
				return nil, err
			}
		}
		return proofToCircomBLS12381(p, signals)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCurve, proof)
	}
}

// VerifyingKeyToCircom converts a gnark Groth16 verifying key into the
// SnarkJS verification key structure. nPublic is the circuit's declared
// number of public inputs and must equal len(IC)-1.
func VerifyingKeyToCircom(vk groth16.VerifyingKey, nPublic int) (*CircomVerificationKey, error) {
	switch k := vk.(type) {
	case *groth16_bn254.VerifyingKey:
		return vkToCircomBN254(k, nPublic)
	case *groth16_bls12381.VerifyingKey:
		return vkToCircomBLS12381(k, nPublic)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedCurve, vk)
	}
}

// PublicSignals extracts the public witness values as ordered decimal
// strings, the content of a SnarkJS public.json file.
func PublicSignals(publicWitness witness.Witness) ([]string, error) {
	switch publicWitness.Vector().(type) {
	case fr_bn254.Vector:
		return publicSignalsBN254(publicWitness)
	case fr_bls12381.Vector:
		return publicSignalsBLS12381(publicWitness)
	default:
		return nil, fmt.Errorf("%w: witness vector %T", ErrUnsupportedCurve, publicWitness.Vector())
	}
}

// ExportProof converts a gnark Groth16 proof to the SnarkJS format, writes
// it to path as pretty-printed JSON and returns the in-memory structure.
// The document is fully assembled before any write, so a failure never
// leaves a truncated file behind.
func ExportProof(proof groth16.Proof, publicWitness witness.Witness, path string) (*CircomProof, error) {
	circomProof, err := ProofToCircom(proof, publicWitness)
	if err != nil {
		return nil, err
	}
	data, err := MarshalCircomProofJSON(circomProof)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal proof JSON: %w", err)
	}
	if err := writeJSON(path, data); err != nil {
		return nil, err
	}
	log := logger.Logger()
	log.Debug().Str("curve", circomProof.Curve).Str("path", path).Msg("exported groth16 proof")
	return circomProof, nil
}

// ExportVerifyingKey converts a gnark Groth16 verifying key to the SnarkJS
// format, writes it to path as pretty-printed JSON and returns the
// in-memory structure.
func ExportVerifyingKey(vk groth16.VerifyingKey, nPublic int, path string) (*CircomVerificationKey, error) {
	circomVk, err := VerifyingKeyToCircom(vk, nPublic)
	if err != nil {
		return nil, err
	}
	data, err := MarshalCircomVerificationKeyJSON(circomVk)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal verification key JSON: %w", err)
	}
	if err := writeJSON(path, data); err != nil {
		return nil, err
	}
	log := logger.Logger()
	log.Debug().Str("curve", circomVk.Curve).Int("nPublic", nPublic).Str("path", path).Msg("exported groth16 verification key")
	return circomVk, nil
}

// ExportPublicSignals writes the public witness values to path as a JSON
// array of decimal strings (SnarkJS public.json) and returns them.
func ExportPublicSignals(publicWitness witness.Witness, path string) ([]string, error) {
	signals, err := PublicSignals(publicWitness)
	if err != nil {
		return nil, err
	}
	data, err := MarshalCircomPublicSignalsJSON(signals)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public signals JSON: %w", err)
	}
	if err := writeJSON(path, data); err != nil {
		return nil, err
	}
	return signals, nil
}

// writeJSON creates the parent directory if needed and writes the document
// in a single call.
func writeJSON(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
