package main

import (
	"github.com/broadsidegame/broadside-go/internal/cli"
)

func main() {
	cli.Execute()
}
