package main

import "github.com/sangkips/till-pos/internal/presentation/cli"

func main() {
	cli.Execute()
}
