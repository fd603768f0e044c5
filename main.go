package main

import "github.com/codeclear/unveil/cmd"

func main() {
	cmd.Execute()
}
