package main

import "github.com/nfrund/twupgrade/cmd/twupgrade-cli/cmd"

func main() {
	cmd.Execute()
}
