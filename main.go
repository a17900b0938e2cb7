package main

import "github.com/fran-roca/aml-intelligence/cmd"

func main() {
	cmd.Execute()
}
