package main

import "rhplus/internal/cli"

func main() {
	cli.Execute()
}
