package main

import "github.com/theirongolddev/memento/cmd"

func main() {
	cmd.Execute()
}
