// Command logfn generates logging wrappers for annotated Go functions.
//
// It is meant to run through go:generate, from a file of the package that is not itself an
// annotated source:
//
//	package fib
//
//	//go:generate go run github.com/arloliu/go-logfn/cmd/logfn generate fib.go
package main

import (
	"os"

	"github.com/arloliu/go-logfn/cmd/logfn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
