package util

// FindEndOfLine returns the position of the last character on the line that
// contains offset, eg. the character right before newline or eof. Carriage
// returns before the newline are not part of the line. For an empty line the
// result is offset-1.
func FindEndOfLine(src []byte, offset int) int {
	for i := offset; i < len(src); i++ {
		if src[i] == '\n' {
			if i > offset && src[i-1] == '\r' {
				return i - 2
			}
			return i - 1
		}
	}

	return len(src) - 1
}
