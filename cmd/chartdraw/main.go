package main

import (
	"github.com/c9s/chartdraw/pkg/cmd"
)

func main() {
	cmd.Execute()
}
