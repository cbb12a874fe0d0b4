package main

import "github.com/notargets/gopinn/cmd"

func main() {
	cmd.Execute()
}
