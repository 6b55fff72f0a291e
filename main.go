package main

import "github.com/strrl/learning-journey/cmd/learning-journey/commands"

func main() {
	commands.Execute()
}
