package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"gitlab.com/alephledger/creator-go/pkg/logging"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: log4humanz logfile.json (- for stdin)")
		return
	}

	var input io.Reader
	name := flag.Args()[0]
	if name == "-" {
		input = os.Stdin
	} else {
		switch _, err := os.Stat(name); {
		case os.IsNotExist(err):
			fmt.Fprintf(os.Stderr, "%s: file not present\n", name)
			return
		case err != nil:
			fmt.Fprintf(os.Stderr, "%s: cannot open file\n", name)
			return
		}
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot open file\n", name)
			return
		}
		defer file.Close()
		input = file
	}

	scanner := bufio.NewScanner(input)
	decoder := logging.NewDecoder(os.Stdout)
	line := 0
	for scanner.Scan() {
		line++
		if _, err := decoder.Write(scanner.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", name, line, err.Error())
		}
	}
}
