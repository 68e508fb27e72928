package sealbox

// importConfig holds configuration for key pair import.
type importConfig struct {
	pairCheck bool
}

// ImportOption configures key pair import.
type ImportOption func(*importConfig)

// WithPairCheck makes ImportKeyPair verify that the imported private key
// is the mathematical counterpart of the imported public key, rejecting
// mixed pairs with a [KeyImportError].
//
// The check is off by default: the wire format carries no pairing proof,
// and callers interoperating with existing deployments historically own
// this responsibility.
func WithPairCheck() ImportOption {
	return func(c *importConfig) {
		c.pairCheck = true
	}
}
