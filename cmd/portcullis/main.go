package main

import "portcullis/internal/cli"

func main() {
	cli.Execute()
}
