package main

import (
	"github.com/nodescope/nodescope/pkg/cli"
)

func main() {
	cli.Execute()
}
