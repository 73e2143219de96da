package main

import "resolver/internal/cli"

func main() {
	cli.Execute()
}
