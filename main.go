package main

import "tunesort/cmd"

func main() {
	cmd.Execute()
}
