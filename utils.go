package main

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// copyPosition puts a model-space position on the system clipboard as
// "x, y".
func copyPosition(p Point) error {
	return clipboard.WriteAll(formatPosition(p))
}

func formatPosition(p Point) string {
	return fmt.Sprintf("%g, %g", p.X, p.Y)
}
