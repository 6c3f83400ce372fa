package main

import "github.com/yigit/sportsmeet/cmd/api/commands"

func main() {
	commands.Execute()
}
