package main

import "github.com/zjrosen/gitplay/cmd"

func main() {
	cmd.Execute()
}
