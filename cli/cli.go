// Package cli drives an interactive REPL over a btree.Tree, the same
// scan-dispatch-prompt shape as the teacher's command-line program —
// adapted from byte-slice keys to integer keys and from a fixed-degree
// tree to an order-m one.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/evannt/BTree/btree"
)

// Cli reads commands from scanner and applies them to tree.
type Cli struct {
	scanner *bufio.Scanner
	tree    *btree.Tree
}

// New builds a Cli reading commands from s and operating on tree.
func New(s *bufio.Scanner, tree *btree.Tree) *Cli {
	return &Cli{scanner: s, tree: tree}
}

// Start prints the help banner and processes commands until EXIT or
// end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Println(`
B-Tree CLI

Available Commands:
  SET <key> <value>  Insert a key/value pair into the B-tree
  DEL <key>           Remove a key from the B-tree
  GET <key>           Retrieve the value for a key
  DUMP                Print the tree's structure as JSON
  EXIT                Terminate this session
`)
}

func (c *Cli) printPrompt() {
	fmt.Print("> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	switch strings.ToLower(fields[0]) {
	default:
		fmt.Printf("Unknown command %q\n", fields[0])
	case "set":
		c.processSet(fields[1:])
	case "del":
		c.processDelete(fields[1:])
	case "get":
		c.processGet(fields[1:])
	case "dump":
		fmt.Println(render(c.tree.Dump()))
	case "exit":
		os.Exit(0)
	}
}

func (c *Cli) processSet(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: SET <key> <value>")
		return
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid key %q: must be an integer\n", args[0])
		return
	}
	c.tree.Insert(key, args[1])
	fmt.Println(render(c.tree.Dump()))
}

func (c *Cli) processDelete(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: DEL <key>")
		return
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid key %q: must be an integer\n", args[0])
		return
	}
	if err := c.tree.Delete(key); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(render(c.tree.Dump()))
}

func (c *Cli) processGet(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: GET <key>")
		return
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid key %q: must be an integer\n", args[0])
		return
	}
	val, err := c.tree.Search(key)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(val)
}
