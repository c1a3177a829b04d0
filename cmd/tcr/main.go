package main

import "github.com/ebgeebee/tokyo-creator-rpg/cmd/tcr/root"

func main() {
	root.Execute()
}
