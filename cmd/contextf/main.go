package main

import "github.com/mvp-joe/contextf/internal/cli"

func main() {
	cli.Execute()
}
