package main

import "bulk-editor/cmd"

func main() {
	cmd.Execute()
}
