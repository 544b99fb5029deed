package main

import "github.com/katalvlaran/latticepose/cmd/latticepose/cmd"

func main() {
	cmd.Execute()
}
