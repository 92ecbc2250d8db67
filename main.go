package main

import "randgen/cmd"

func main() {
	cmd.Execute()
}
