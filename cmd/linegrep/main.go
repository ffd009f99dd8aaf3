// Command linegrep prints lines matching a pattern.
//
//	echo "cat and cat" | linegrep -E '(\w+) and \1'
package main

import "github.com/coregx/linegrep/internal/cli"

func main() {
	cli.Main()
}
