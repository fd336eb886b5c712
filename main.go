package main

import "github.com/brogergvhs/errgen/cmd"

func main() {
	cmd.Execute()
}
