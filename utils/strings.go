package utils

import (
	"strings"
)

// ContainsString returns true if strings contains str
func ContainsString(strings []string, str string) bool {
	if str != `` {
		for _, v := range strings {
			if v == str {
				return true
			}
		}
	}
	return false
}

// Indent inserts prefix after each newline of s
func Indent(s, prefix string) string {
	return strings.Replace(s, "\n", "\n"+prefix, -1)
}
