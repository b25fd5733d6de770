package main

import (
	"HealthHubTerminal/cmd"
	"os"
)

var (
	execute = cmd.Execute
	exit    = os.Exit
)

func main() {
	run()
}

// cobra already reported the error on stderr.
func run() {
	if err := execute(); err != nil {
		exit(1)
	}
}
