// Command levdist computes the Levenshtein distance between the contents
// of two files.
//
// Usage:
//
//	levdist [-width 1|2|4] [-progress] fileA fileB
//
// Files are interpreted as sequences of native-endian elements of the
// given byte width; trailing bytes that do not fill an element are
// ignored. On Unix platforms the inputs are memory-mapped rather than
// read.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	"unsafe"

	"github.com/ajroetker/go-levenshtein/lev"
)

var (
	elemWidth = flag.Int("width", 1, "element width in bytes: 1, 2 or 4")
	progress  = flag.Bool("progress", false, "report progress to stderr every 1024 anti-diagonals")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("levdist: ")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: levdist [-width 1|2|4] [-progress] fileA fileB\n")
		os.Exit(2)
	}

	dataA, closeA, err := mapFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer closeA()
	dataB, closeB, err := mapFile(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}
	defer closeB()

	var observe func(done, total uint64)
	if *progress {
		observe = func(done, total uint64) {
			fmt.Fprintf(os.Stderr, "\r%d/%d anti-diagonals", done, total)
		}
	}

	start := time.Now()
	var dist uint64
	switch *elemWidth {
	case 1:
		dist = lev.DistanceObserved(dataA, dataB, observe)
	case 2:
		dist = lev.DistanceObserved(asUint16(dataA), asUint16(dataB), observe)
	case 4:
		dist = lev.DistanceObserved(asUint32(dataA), asUint32(dataB), observe)
	default:
		log.Fatalf("unsupported element width %d", *elemWidth)
	}
	elapsed := time.Since(start)
	if *progress {
		fmt.Fprintln(os.Stderr)
	}

	fmt.Println(dist)
	fmt.Fprintf(os.Stderr, "kernel=%s width=%d elapsed=%s\n", lev.CurrentLevel(), *elemWidth, elapsed)
}

func asUint16(b []byte) []uint16 {
	n := len(b) / 2
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

func asUint32(b []byte) []uint32 {
	n := len(b) / 4
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
