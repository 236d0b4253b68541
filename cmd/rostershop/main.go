package main

import (
	"rostershop/internal/cli"
)

func main() {
	cli.Execute()
}
