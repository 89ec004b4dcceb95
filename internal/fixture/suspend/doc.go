// Package suspend holds annotated functions returning receive-only channels, generated in
// suspending mode as configured by .logfn.yaml.
package suspend

//go:generate go run ../../../cmd/logfn generate fetch.go
