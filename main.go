package main

import "github.com/notargets/gopoly/cmd"

func main() {
	cmd.Execute()
}
