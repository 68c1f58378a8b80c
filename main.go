package main

import "github.com/itsmostafa/runcode/cmd"

func main() {
	cmd.Execute()
}
