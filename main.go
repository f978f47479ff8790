package main

import "audiomass-server/cmd"

func main() {
	cmd.Execute()
}
