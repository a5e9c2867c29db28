// Package common contains small helpers shared by the client packages.
package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// The CLI zeroes the buffer a password was read into as soon as it has been
// copied into the form. Copies made before that, such as the form's string
// value, are not affected.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
