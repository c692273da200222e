// Command huffpack compresses files with a static Huffman code, writing
// <FILE>_compressed.huffman next to each input, and decompresses them again
// with -d.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffpack: ")

	os.Exit(exitCode(run(context.Background(), os.Args[1:], os.Stdout)))
}

// exitCode logs err, if any, and maps it to the process exit status.  A
// request for -h has already printed usage and is not a failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		log.Print(err)
		return 1
	}
}
