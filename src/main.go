package main

import "udirs/src/cmd"

func main() {
	cmd.Execute()
}
