//go:build logfnsrc

package fixture

import "github.com/arloliu/go-logfn/result"

//logfn:output Info, fmt = "wrapper_function returned {}"
func wrappedFunction(a uint8, b string) {
	var calls []string
	record := func() {
		calls = append(calls, b)
	}
	record()
}

//logfn:output Info
func fibonacci(n uint32) uint32 {
	switch n {
	case 0, 1:
		return 1
	default:
		return fibonacci(n-1) + fibonacci(n-2)
	}
}

//logfn:output Info
func (Buffer) Zeros(a string, b uint8, c []byte) []byte {
	return make([]byte, 8)
}

//logfn:output Info, fmt = "DB: {}", ok = debug, err = trace
func (m *Me) Abc(t Tes) (string, error) {
	if _, err := m.Third(t); err != nil {
		return "", err
	}
	m.Value = 5
	return "Hi!", nil
}

//logfn:output Info
func (m Me) Third(t Tes) (string, error) {
	if t.Fail {
		return "", ErrE
	}
	return "Hi!", nil
}

//logfn:inputs Debug
func (m Me) JustInputs(t Tes) (string, error) {
	if t.Fail {
		return "", ErrE
	}
	return "Hi!", nil
}

//logfn:inputs Trace
//logfn:output Info
func (m Me) Both(t Tes) (string, error) {
	return m.Third(t)
}

//logfn:output Info, fmt = "a + b = {}"
//logfn:inputs Trace, fmt = "adding a: {} and b: {}"
func addition(a, b int) int {
	return a + b
}

//logfn:inputs Info
//logfn:output ok = trace, err = error
func callIsan(num string) result.Result[string] {
	if len(num) >= 10 && len(num) <= 15 {
		return result.Ok("Success")
	}
	return result.Err[string](ErrInvalidISAN)
}

//logfn:inputs Info
//logfn:output ok = trace, log_ts = true
func timeThis(num string) result.Result[string] {
	if len(num) >= 10 && len(num) <= 15 {
		return result.Ok("Success")
	}
	return result.Err[string](ErrInvalidISAN)
}

//logfn:output fmt = "never logged"
func quiet() int {
	return 7
}

//logfn:output Debug, log_ts = true
func func2(counter *int) {
	*counter++
}

//logfn:output fmt = "notDivisibleBy3() -> {}", ok = info, err = error
func notDivisibleBy3(n uint32) (uint32, error) {
	if n%3 == 0 {
		return 0, &DivisibleError{N: n, By: 3}
	}
	return n, nil
}

//logfn:inputs Info, fmt = "Checking if {} is alive"
//logfn:output Warn
func (p *Person) IsAlive() Status {
	switch {
	case p.Responds:
		return Alive
	case p.Awake:
		return Unknown
	default:
		return Dead
	}
}

//logfn:output Debug
func split(sum int) (x, y int) {
	x = sum * 4 / 9
	y = sum - x
	return
}

//logfn:output Info
func first[T any](items []T) T {
	return items[0]
}
