package main

import "github.com/brogergvhs/shadowres/cmd"

func main() {
	cmd.Execute()
}
