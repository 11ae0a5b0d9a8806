package main

import "github.com/aalvaropc/linkcheck/internal/cli"

func main() {
	cli.Execute()
}
