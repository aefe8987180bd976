package common

// WipeByteArray overwrites the buffer with zeros so transient secrets
// (passwords read from the terminal) do not linger in memory. Nil-safe.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
