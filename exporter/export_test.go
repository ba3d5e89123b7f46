package exporter_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	rapidsnarktypes "github.com/iden3/go-rapidsnark/types"
	rapidsnark "github.com/iden3/go-rapidsnark/verifier"

	"github.com/vocdoni/gnark2snarkjs/exporter"
)

// mulCircuit checks that x * y == z, where z is the only public input.
type mulCircuit struct {
	X frontend.Variable
	Y frontend.Variable
	Z frontend.Variable `gnark:",public"`
}

func (c *mulCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.X, c.Y), c.Z)
	return nil
}

// proveMul compiles the mul circuit over the given curve, runs the Groth16
// setup and proves the assignment 641 * 6700417 == 4294967297.
func proveMul(t *testing.T, curveID ecc.ID) (groth16.Proof, groth16.VerifyingKey, witness.Witness) {
	t.Helper()

	var circuit mulCircuit
	cs, err := frontend.Compile(curveID.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		t.Fatalf("failed to compile circuit: %v", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		t.Fatalf("groth16 setup failed: %v", err)
	}

	assignment := mulCircuit{X: 641, Y: 6700417, Z: 4294967297}
	witnessFull, err := frontend.NewWitness(&assignment, curveID.ScalarField())
	if err != nil {
		t.Fatalf("failed to create witness: %v", err)
	}
	publicWitness, err := witnessFull.Public()
	if err != nil {
		t.Fatalf("failed to get public witness: %v", err)
	}

	proof, err := groth16.Prove(cs, pk, witnessFull)
	if err != nil {
		t.Fatalf("groth16 proving failed: %v", err)
	}
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		t.Fatalf("groth16 proof verification failed: %v", err)
	}

	return proof, vk, publicWitness
}

func checkProofShape(t *testing.T, proof *exporter.CircomProof, wantCurve string) {
	t.Helper()
	if proof.Protocol != "groth16" {
		t.Fatalf("expected protocol groth16, got %q", proof.Protocol)
	}
	if proof.Curve != wantCurve {
		t.Fatalf("expected curve %q, got %q", wantCurve, proof.Curve)
	}
	if len(proof.PiA) != 3 || proof.PiA[2] != "1" {
		t.Fatalf("unexpected pi_a shape: %v", proof.PiA)
	}
	if len(proof.PiC) != 3 || proof.PiC[2] != "1" {
		t.Fatalf("unexpected pi_c shape: %v", proof.PiC)
	}
	if len(proof.PiB) != 3 {
		t.Fatalf("unexpected pi_b shape: %v", proof.PiB)
	}
	for i, coord := range proof.PiB {
		if len(coord) != 2 {
			t.Fatalf("pi_b[%d] has %d coefficients, expected 2", i, len(coord))
		}
	}
	if proof.PiB[2][0] != "1" || proof.PiB[2][1] != "0" {
		t.Fatalf("unexpected pi_b z coordinate: %v", proof.PiB[2])
	}
	if len(proof.PublicSignals) != 1 || proof.PublicSignals[0] != "4294967297" {
		t.Fatalf("unexpected public signals: %v", proof.PublicSignals)
	}
}

func TestExportBN254(t *testing.T) {
	proof, vk, publicWitness := proveMul(t, ecc.BN254)
	dir := t.TempDir()
	proofPath := filepath.Join(dir, "proof.json")
	vkPath := filepath.Join(dir, "vkey.json")
	publicPath := filepath.Join(dir, "public_signals.json")

	circomProof, err := exporter.ExportProof(proof, publicWitness, proofPath)
	if err != nil {
		t.Fatalf("failed to export proof: %v", err)
	}
	checkProofShape(t, circomProof, "bn128")

	circomVk, err := exporter.ExportVerifyingKey(vk, 1, vkPath)
	if err != nil {
		t.Fatalf("failed to export verification key: %v", err)
	}
	if circomVk.NPublic != 1 || len(circomVk.IC) != 2 {
		t.Fatalf("unexpected vk shape: nPublic=%d, len(IC)=%d", circomVk.NPublic, len(circomVk.IC))
	}
	if len(circomVk.VkAlphabeta12) != 2 {
		t.Fatalf("unexpected vk_alphabeta_12 shape: %d outer elements", len(circomVk.VkAlphabeta12))
	}

	signals, err := exporter.ExportPublicSignals(publicWitness, publicPath)
	if err != nil {
		t.Fatalf("failed to export public signals: %v", err)
	}
	if len(signals) != 1 || signals[0] != "4294967297" {
		t.Fatalf("unexpected public signals: %v", signals)
	}

	// the written file must match the returned structure
	proofData, err := os.ReadFile(proofPath)
	if err != nil {
		t.Fatalf("failed to read proof.json: %v", err)
	}
	parsed, err := exporter.UnmarshalCircomProofJSON(proofData)
	if err != nil {
		t.Fatalf("failed to parse written proof: %v", err)
	}
	if !reflect.DeepEqual(parsed, circomProof) {
		t.Fatal("written proof does not round-trip to the exported structure")
	}

	// verify the written artifacts with go-snark
	ok, err := exporter.VerifyExported(proofPath, vkPath, publicPath)
	if err != nil {
		t.Fatalf("failed to verify exported files: %v", err)
	}
	if !ok {
		t.Fatal("go-snark rejected the exported proof")
	}

	// and with a second, independent snarkjs-compatible verifier
	vkData, err := os.ReadFile(vkPath)
	if err != nil {
		t.Fatalf("failed to read vkey.json: %v", err)
	}
	zkp := rapidsnarktypes.ZKProof{
		Proof: &rapidsnarktypes.ProofData{
			A:        circomProof.PiA,
			B:        circomProof.PiB,
			C:        circomProof.PiC,
			Protocol: circomProof.Protocol,
		},
		PubSignals: signals,
	}
	if err := rapidsnark.VerifyGroth16(zkp, vkData); err != nil {
		t.Fatalf("go-rapidsnark rejected the exported proof: %v", err)
	}
}

func TestExportBLS12381(t *testing.T) {
	proof, vk, publicWitness := proveMul(t, ecc.BLS12_381)
	dir := t.TempDir()
	proofPath := filepath.Join(dir, "proof.json")
	vkPath := filepath.Join(dir, "vkey.json")
	publicPath := filepath.Join(dir, "public_signals.json")

	circomProof, err := exporter.ExportProof(proof, publicWitness, proofPath)
	if err != nil {
		t.Fatalf("failed to export proof: %v", err)
	}
	checkProofShape(t, circomProof, "bls12381")

	circomVk, err := exporter.ExportVerifyingKey(vk, 1, vkPath)
	if err != nil {
		t.Fatalf("failed to export verification key: %v", err)
	}
	if circomVk.Curve != "bls12381" {
		t.Fatalf("expected curve bls12381, got %q", circomVk.Curve)
	}
	if circomVk.NPublic != 1 || len(circomVk.IC) != 2 {
		t.Fatalf("unexpected vk shape: nPublic=%d, len(IC)=%d", circomVk.NPublic, len(circomVk.IC))
	}

	if _, err := exporter.ExportPublicSignals(publicWitness, publicPath); err != nil {
		t.Fatalf("failed to export public signals: %v", err)
	}

	vkData, err := os.ReadFile(vkPath)
	if err != nil {
		t.Fatalf("failed to read vkey.json: %v", err)
	}
	parsedVk, err := exporter.UnmarshalCircomVerificationKeyJSON(vkData)
	if err != nil {
		t.Fatalf("failed to parse written vkey: %v", err)
	}
	if !reflect.DeepEqual(parsedVk, circomVk) {
		t.Fatal("written vkey does not round-trip to the exported structure")
	}

	// go-snark only implements bn128
	if _, err := exporter.VerifyExported(proofPath, vkPath, publicPath); !errors.Is(err, exporter.ErrUnsupportedCurve) {
		t.Fatalf("expected ErrUnsupportedCurve from go-snark verification, got %v", err)
	}
}

func TestExportIdempotent(t *testing.T) {
	proof, vk, publicWitness := proveMul(t, ecc.BN254)
	dir := t.TempDir()

	if _, err := exporter.ExportProof(proof, publicWitness, filepath.Join(dir, "proof1.json")); err != nil {
		t.Fatalf("failed to export proof: %v", err)
	}
	if _, err := exporter.ExportProof(proof, publicWitness, filepath.Join(dir, "proof2.json")); err != nil {
		t.Fatalf("failed to export proof: %v", err)
	}
	data1, err := os.ReadFile(filepath.Join(dir, "proof1.json"))
	if err != nil {
		t.Fatalf("failed to read proof1.json: %v", err)
	}
	data2, err := os.ReadFile(filepath.Join(dir, "proof2.json"))
	if err != nil {
		t.Fatalf("failed to read proof2.json: %v", err)
	}
	if !bytes.Equal(data1, data2) {
		t.Fatal("two exports of the same proof are not byte-identical")
	}

	if _, err := exporter.ExportVerifyingKey(vk, 1, filepath.Join(dir, "vkey1.json")); err != nil {
		t.Fatalf("failed to export vkey: %v", err)
	}
	if _, err := exporter.ExportVerifyingKey(vk, 1, filepath.Join(dir, "vkey2.json")); err != nil {
		t.Fatalf("failed to export vkey: %v", err)
	}
	vk1, err := os.ReadFile(filepath.Join(dir, "vkey1.json"))
	if err != nil {
		t.Fatalf("failed to read vkey1.json: %v", err)
	}
	vk2, err := os.ReadFile(filepath.Join(dir, "vkey2.json"))
	if err != nil {
		t.Fatalf("failed to read vkey2.json: %v", err)
	}
	if !bytes.Equal(vk1, vk2) {
		t.Fatal("two exports of the same vkey are not byte-identical")
	}
}

func TestPublicInputCountMismatch(t *testing.T) {
	_, vk, _ := proveMul(t, ecc.BN254)

	for _, nPublic := range []int{-1, 0, 2, 5} {
		if _, err := exporter.VerifyingKeyToCircom(vk, nPublic); !errors.Is(err, exporter.ErrPublicInputCountMismatch) {
			t.Fatalf("nPublic=%d: expected ErrPublicInputCountMismatch, got %v", nPublic, err)
		}
	}

	// the valid count still works
	if _, err := exporter.VerifyingKeyToCircom(vk, 1); err != nil {
		t.Fatalf("failed to convert vkey with the correct count: %v", err)
	}
}

func TestUnsupportedCurveArtifacts(t *testing.T) {
	proof, vk, publicWitness := proveMul(t, ecc.BLS12_377)

	if _, err := exporter.ProofToCircom(proof, publicWitness); !errors.Is(err, exporter.ErrUnsupportedCurve) {
		t.Fatalf("expected ErrUnsupportedCurve for a bls12-377 proof, got %v", err)
	}
	if _, err := exporter.VerifyingKeyToCircom(vk, 1); !errors.Is(err, exporter.ErrUnsupportedCurve) {
		t.Fatalf("expected ErrUnsupportedCurve for a bls12-377 vkey, got %v", err)
	}
	if _, err := exporter.PublicSignals(publicWitness); !errors.Is(err, exporter.ErrUnsupportedCurve) {
		t.Fatalf("expected ErrUnsupportedCurve for a bls12-377 witness, got %v", err)
	}
}
