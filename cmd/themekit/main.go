package main

import "themekit/internal/cli"

func main() {
	cli.Execute()
}
