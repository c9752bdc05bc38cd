// Command huffpress compresses and decompresses files using the
// huffpress Huffman archive format.
//
// Usage:
//
//	huffpress -c input output    compress input into output
//	huffpress -d archive output  decompress archive into output
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bitforest/huffpress"
)

var (
	compressFlag   = flag.Bool("c", false, "compress input into output")
	decompressFlag = flag.Bool("d", false, "decompress input into output")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *compressFlag == *decompressFlag || flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	in, out := flag.Arg(0), flag.Arg(1)
	var err error
	if *compressFlag {
		err = compressFile(in, out)
	} else {
		err = decompressFile(in, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffpress: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s (-c | -d) input output\n", os.Args[0])
	flag.PrintDefaults()
}

func compressFile(inPath, outPath string) error {
	src, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if err := huffpress.Compress(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func decompressFile(inPath, outPath string) error {
	src, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if err := huffpress.Decompress(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
