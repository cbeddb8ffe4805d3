package main

import "github.com/wordle-tools/solver/cmd"

func main() {
	cmd.Main()
}
