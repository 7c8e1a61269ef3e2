package main

import "atmsim/cmd"

func main() {
	cmd.Execute()
}
