package main

import (
	"github.com/PaulaGudiela/Fishbiotools/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
