package scanner

import "strings"

func isAlpha(c byte) bool {
	return c != 0 && strings.IndexByte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_", c) >= 0
}

func isNum(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWhitespace(c byte) bool {
	return c != 0 && strings.IndexByte("\n\t\r ", c) >= 0
}
