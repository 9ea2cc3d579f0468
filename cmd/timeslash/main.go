package main

import "github.com/DrSkyle/timeslash/cmd/timeslash/commands"

func main() {
	commands.Execute()
}
