package exporter

// CircomProof represents a Groth16 proof in the JSON layout produced and
// consumed by SnarkJS (proof.json).
type CircomProof struct {
	PiA           []string   `json:"pi_a"`
	PiB           [][]string `json:"pi_b"`
	PiC           []string   `json:"pi_c"`
	Protocol      string     `json:"protocol"`
	Curve         string     `json:"curve"`
	PublicSignals []string   `json:"public_signals,omitempty"`
}

// CircomVerificationKey represents a Groth16 verification key in the JSON
// layout produced and consumed by SnarkJS (vkey.json).
type CircomVerificationKey struct {
	Protocol      string       `json:"protocol"`
	Curve         string       `json:"curve"`
	NPublic       int          `json:"nPublic"`
	VkAlpha1      []string     `json:"vk_alpha_1"`
	VkBeta2       [][]string   `json:"vk_beta_2"`
	VkGamma2      [][]string   `json:"vk_gamma_2"`
	VkDelta2      [][]string   `json:"vk_delta_2"`
	IC            [][]string   `json:"IC"`
	VkAlphabeta12 [][][]string `json:"vk_alphabeta_12"` // e(alpha, beta), not used in verification
}
