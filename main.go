package main

import "github.com/hydrosolve/gofv2d/cmd"

func main() {
	cmd.Execute()
}
