//go:build logfnsrc

package suspend

import (
	"strconv"

	"github.com/arloliu/go-logfn/result"
)

//logfn:inputs Debug
//logfn:output Info
func fetch(id int) <-chan result.Result[string] {
	out := make(chan result.Result[string], 1)
	go func() {
		defer close(out)
		if id < 0 {
			out <- result.Err[string](ErrNotFound)
			return
		}
		out <- result.Ok("item-" + strconv.Itoa(id))
	}()
	return out
}

//logfn:output Debug, log_ts = true
func double(n int) <-chan int {
	out := make(chan int, 1)
	out <- n * 2
	close(out)
	return out
}

//logfn:output Info
func nothing() <-chan int {
	out := make(chan int)
	close(out)
	return out
}

//logfn:output Info
func snapshot(p *int) <-chan int {
	v := *p
	out := make(chan int, 1)
	out <- v
	close(out)
	return out
}

//logfn:output Info
func validate(n int) <-chan int {
	if n < 0 {
		panic("negative input")
	}
	out := make(chan int, 1)
	out <- n
	close(out)
	return out
}

//logfn:output Info
func add(a, b int) int {
	return a + b
}
