package main

import "streetinterview/cmd/streetinterview-cli/cmd"

func main() {
	cmd.Execute()
}
