// Package shared holds small helpers used by more than one client layer.
package shared

// WipeByteArray zeroes b. Use it on password and key buffers once they
// are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	clear(b)
}
