// Command btreecli runs an interactive REPL over a B-tree, mirroring
// the teacher's main.go wiring of a bufio.Scanner into a Cli.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/evannt/BTree/btree"
	"github.com/evannt/BTree/cli"
)

func main() {
	tree, err := btree.New(4)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.New(scanner, tree)
	demo.Start()
}
