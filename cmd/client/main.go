package main

import "peopledir/cmd/client/cmd"

func main() {
	cmd.Execute()
}
