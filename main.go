package main

import (
	"github.com/rubiojr/rugo-cmath/cmd"
	_ "github.com/rubiojr/rugo-cmath/modules/cmath"
	_ "github.com/rubiojr/rugo-cmath/modules/math"
)

var version = "v0.1.0"

func main() {
	cmd.Execute(version)
}
