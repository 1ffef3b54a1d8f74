// Package obfuscate implements the repeating-key XOR pad applied to the
// proof bytes before they are embedded in a QR code. It is an obfuscation
// step, not encryption: it has no effect on the cryptographic guarantees of
// the proof, only on whether a casual reader of the QR payload can
// recognize proof bytes at a glance.
package obfuscate

// XOR repeating-key-XORs b against pad, returning a new slice of len(b).
// It is its own inverse: XOR(XOR(b, pad), pad) == b. An empty pad is a
// no-op copy.
func XOR(b, pad []byte) []byte {
	out := make([]byte, len(b))
	if len(pad) == 0 {
		copy(out, b)
		return out
	}
	for i := range b {
		out[i] = b[i] ^ pad[i%len(pad)]
	}
	return out
}
