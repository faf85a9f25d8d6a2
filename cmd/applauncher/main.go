package main

import "github.com/h13-0/AppLauncher/internal/cli"

func main() {
	cli.Execute()
}
