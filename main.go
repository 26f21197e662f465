package main

import "github.com/cosmic-missions/cmd"

func main() {
	cmd.Execute()
}
