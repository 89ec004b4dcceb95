// Package fixture holds annotated functions together with the code logfn generates for them.
//
// annotated.go is the annotated source and annotated_logfn.go its committed output. The tests
// call the generated functions and check that the committed output is up to date.
package fixture

//go:generate go run ../../cmd/logfn generate annotated.go
