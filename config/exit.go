package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Exitf reports a fatal command error as "<command>: <message>" on stderr
// and exits with status 1.
func Exitf(format string, args ...any) {
	writeExit(os.Stderr, filepath.Base(os.Args[0]), format, args...)
	os.Exit(1)
}

func writeExit(w io.Writer, command, format string, args ...any) {
	fmt.Fprintf(w, "%s: %s\n", command, fmt.Sprintf(format, args...))
}
