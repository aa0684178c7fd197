package main

import "github.com/darcygrid/mpflow/cmd"

func main() {
	cmd.Execute()
}
