package logs

import (
	"io"
	"log"
	"os"
)

var (
	ErrLogger  = log.New(os.Stderr, "[ FAIL ]: ", log.Lshortfile)
	WarnLogger = log.New(os.Stderr, "[ WARN ]: ", log.Lshortfile)
	InfoLogger = log.New(os.Stdout, "[ INFO ]: ", log.Lshortfile)
)

// Quiet silences the info logger. Failures and warnings still go through.
func Quiet() {
	InfoLogger.SetOutput(io.Discard)
}
