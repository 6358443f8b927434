package main

import "wardrobe/cmd"

func main() {
	cmd.Execute()
}
