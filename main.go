package main

import "github.com/anshul-mehra/notecanon/cmd"

func main() {
	cmd.Execute()
}
