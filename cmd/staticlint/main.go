// Package main implements a multichecker for the project's static analysis.
//
// Usage:
//
//	go run cmd/staticlint/main.go ./...
//	./staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/sbilibin2017/adbperf/cmd/staticlint/analyzers"
)

func main() {
	multichecker.Main(
		analyzers.NoOsExitMainAnalyzer,
	)
}
