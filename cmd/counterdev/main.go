// Command counterdev serves a local counter API and drives the widget from a terminal.
package main

import (
	"os"

	"github.com/vcrobe/visitorcounter/console"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		console.Error(err.Error())
		os.Exit(1)
	}
}
