// minicube - CLI for simulating the corners of a 3x3 cube.
package main

import (
	"github.com/SeamusWaldron/minicube/internal/cli"
)

func main() {
	cli.Execute()
}
