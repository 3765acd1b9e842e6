package main

import "github.com/hrutik5321/dhumal/internal/cli"

func main() {
	cli.Execute()
}
