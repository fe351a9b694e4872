package main

import "github.com/mobinyousefi-cs/dice-roller/cmd"

func main() {
	cmd.Execute()
}
