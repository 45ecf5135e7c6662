package main

import (
	"github.com/mcoot/bingo-server/internal/cli"
)

func main() {
	cli.Execute()
}
