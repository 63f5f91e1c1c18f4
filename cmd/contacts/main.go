// Command contacts runs the contact directory demonstration and tools.
package main

import "github.com/mesh-intelligence/contacts/internal/cli"

func main() {
	cli.Execute()
}
