package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"github.com/vocdoni/gnark2snarkjs/exporter"
)

// MulCircuit checks that x * y == z, where z is the only public input.
type MulCircuit struct {
	X frontend.Variable
	Y frontend.Variable
	Z frontend.Variable `gnark:",public"`
}

// Define declares the circuit's single constraint.
func (c *MulCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.X, c.Y), c.Z)
	return nil
}

func main() {
	curveName := "bn128"
	outDir := "snarkjs_data"
	debug := false
	flag.StringVar(&curveName, "curve", curveName, "Curve to prove over (bn128 or bls12381)")
	flag.StringVar(&outDir, "out", outDir, "Directory to write proof.json, vkey.json and public_signals.json to")
	flag.BoolVar(&debug, "debug", debug, "Enable debug logging")
	flag.Parse()

	if debug {
		logger.Set(logger.Logger().Level(zerolog.DebugLevel))
	}

	curveID, err := exporter.CurveByName(curveName)
	if err != nil {
		log.Fatalf("unknown curve %q: %v", curveName, err)
	}

	// Compile the circuit.
	var circuit MulCircuit
	cs, err := frontend.Compile(curveID.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		log.Fatalf("failed to compile circuit: %v", err)
	}

	// Setup: generate proving and verifying keys.
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		log.Fatalf("groth16 setup failed: %v", err)
	}

	// 2^32 + 1 = 641 * 6700417; z is the public input.
	assignment := MulCircuit{
		X: 641,
		Y: 6700417,
		Z: 4294967297,
	}
	witnessFull, err := frontend.NewWitness(&assignment, curveID.ScalarField())
	if err != nil {
		log.Fatalf("failed to create witness: %v", err)
	}
	publicWitness, err := witnessFull.Public()
	if err != nil {
		log.Fatalf("failed to get public witness: %v", err)
	}

	// Prove and verify locally before exporting.
	proof, err := groth16.Prove(cs, pk, witnessFull)
	if err != nil {
		log.Fatalf("groth16 proving failed: %v", err)
	}
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		log.Fatalf("groth16 proof verification failed: %v", err)
	}

	// Export the SnarkJS files.
	proofPath := filepath.Join(outDir, "proof.json")
	vkPath := filepath.Join(outDir, "vkey.json")
	publicPath := filepath.Join(outDir, "public_signals.json")

	if _, err := exporter.ExportProof(proof, publicWitness, proofPath); err != nil {
		log.Fatalf("failed to export proof: %v", err)
	}
	signals, err := exporter.ExportPublicSignals(publicWitness, publicPath)
	if err != nil {
		log.Fatalf("failed to export public signals: %v", err)
	}
	if _, err := exporter.ExportVerifyingKey(vk, len(signals), vkPath); err != nil {
		log.Fatalf("failed to export verification key: %v", err)
	}
	log.Printf("wrote %s, %s and %s", proofPath, vkPath, publicPath)
	log.Printf("to verify manually run: snarkjs groth16 verify %s %s %s", vkPath, publicPath, proofPath)

	// go-snark can double-check bn128 exports without leaving Go.
	if curveName == exporter.CurveNameBN254 {
		ok, err := exporter.VerifyExported(proofPath, vkPath, publicPath)
		if err != nil {
			log.Fatalf("failed to verify exported files: %v", err)
		}
		if !ok {
			log.Fatal("exported files did not verify")
		}
		log.Print("exported files verified with go-snark")
	}
}
