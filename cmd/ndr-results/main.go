package main

import "github.com/mjansen/ndr-results/internal/cli"

func main() {
	cli.Execute()
}
