package main

import "github.com/OpenTraceLab/OpenTracePCB/cmd/opcb/cmd"

func main() {
	cmd.Execute()
}
