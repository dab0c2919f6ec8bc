// Command twotouch converts text to and from pager two-touch codes.
package main

import (
	"os"

	"github.com/unkn0wn-root/twotouch/cmd/twotouch/command"
)

func main() {
	if err := command.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
