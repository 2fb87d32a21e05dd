package main

import "github.com/mechkit/fourbar/internal/cli"

func main() {
	cli.Execute()
}
