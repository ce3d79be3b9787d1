package config

import (
	"os"
	"strings"
)

const badFileName = "_bad_file_name_"

// CleanFileName removes not allowed characters form file name.
func CleanFileName(in string) string {
	bad := invalidNameChars + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(bad, sym) {
			return -1
		}
		return sym
	}, in)
	// no hidden files and no "." or ".." names
	out = strings.TrimLeft(out, ".")
	if len(out) == 0 {
		out = badFileName
	}
	return out
}
