package main

import "github.com/naka-gawa/github-analyzer/cmd"

func main() {
	cmd.Execute()
}
