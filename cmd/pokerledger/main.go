package main

import (
	"github.com/hleth/pokerledger/internal/cli"
)

func main() {
	cli.Execute()
}
