package main

import "github.com/analogrelay/abi-check/cmd"

func main() {
	cmd.Execute()
}
