package main

import "github.com/samuelfneumann/gymenv/cli"

func main() {
	cli.Execute()
}
