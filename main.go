package main

import "github.com/murmur-im/groupuser/cmd"

func main() {
	cmd.Execute()
}
