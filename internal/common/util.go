package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it on password buffers once they have been copied where needed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
