package main

import "posfit/internal/cli"

func main() {
	cli.Execute()
}
