package main

import "github.com/lucidstyle/shade/internal/cli"

func main() {
	cli.Execute()
}
