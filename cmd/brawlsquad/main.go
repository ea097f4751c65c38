package main

import (
	"github.com/brawlops/brawlsquad/internal/cli"
)

func main() {
	cli.Execute()
}
