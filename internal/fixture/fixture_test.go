package fixture

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-logfn/logger"
	"github.com/arloliu/go-logfn/logger/logtest"
)

func TestWrappedFunction(t *testing.T) {
	logs := logtest.Capture(t)

	wrappedFunction(1, "hello")
	logs.RequireLast(logger.InfoLevel, "wrapper_function returned <nil>")
}

func TestFibonacci(t *testing.T) {
	logs := logtest.Capture(t)

	require.Equal(t, uint32(8), fibonacci(5))
	logs.RequireLast(logger.InfoLevel, "fibonacci() => 8")

	// every recursive call logs its own result
	require.Equal(t, 14, logs.Len())
	for logs.Len() > 0 {
		require.Equal(t, logger.InfoLevel, logs.PopLast().Level)
	}
}

func TestZeros(t *testing.T) {
	logs := logtest.Capture(t)

	require.Equal(t, make([]byte, 8), Buffer{}.Zeros("a", 2, nil))
	logs.RequireLast(logger.InfoLevel, "Zeros() => [0 0 0 0 0 0 0 0]")
}

func TestMe(t *testing.T) {
	logs := logtest.Capture(t)
	me := &Me{}

	v, err := me.Abc(Tes{})
	require.NoError(t, err)
	require.Equal(t, "Hi!", v)
	require.Equal(t, 5, me.Value)
	logs.RequireLast(logger.DebugLevel, "DB: Hi!")
	logs.RequireLast(logger.InfoLevel, "Third() => Hi!")

	_, err = me.Abc(Tes{Fail: true})
	require.ErrorIs(t, err, ErrE)
	logs.RequireLast(logger.TraceLevel, "DB: E")
	logs.RequireLast(logger.InfoLevel, "Third() => E")

	v, err = me.JustInputs(Tes{})
	require.NoError(t, err)
	require.Equal(t, "Hi!", v)
	logs.RequireLast(logger.DebugLevel, "JustInputs(m: Me(5), t: Tes(false))")

	_, err = me.Both(Tes{Fail: true})
	require.ErrorIs(t, err, ErrE)
	logs.RequireLast(logger.InfoLevel, "Both() => E")
	logs.RequireLast(logger.InfoLevel, "Third() => E")
	logs.RequireLast(logger.TraceLevel, "Both(m: Me(5), t: Tes(true))")
}

func TestAddition(t *testing.T) {
	logs := logtest.Capture(t)

	require.Equal(t, 5, addition(2, 3))
	logs.RequireLast(logger.InfoLevel, "a + b = 5")
	logs.RequireLast(logger.TraceLevel, "adding a: 2 and b: 3")
}

func TestCallIsan(t *testing.T) {
	logs := logtest.Capture(t)

	v, err := callIsan("000000018947000000000000").Get()
	require.ErrorIs(t, err, ErrInvalidISAN)
	require.Empty(t, v)
	logs.RequireLast(logger.ErrorLevel, "callIsan() => invalid ISAN")
	logs.RequireLast(logger.InfoLevel, "callIsan(num: 000000018947000000000000)")

	v, err = callIsan("0000000189470").Get()
	require.NoError(t, err)
	require.Equal(t, "Success", v)
	logs.RequireLast(logger.TraceLevel, "callIsan() => Success")
	logs.RequireLast(logger.InfoLevel, "callIsan(num: 0000000189470)")
}

func TestTimeThis(t *testing.T) {
	logs := logtest.Capture(t)

	require.True(t, timeThis("0000000189470").IsOk())
	rec := logs.PopLast()
	require.Equal(t, logger.TraceLevel, rec.Level)
	require.Regexp(t, regexp.MustCompile(`^timeThis\(\) => Success, ts=\S+s$`), rec.Message)
	logs.RequireLast(logger.InfoLevel, "timeThis(num: 0000000189470)")

	// no err level, so a failure is silent
	require.False(t, timeThis("1").IsOk())
	logs.RequireLast(logger.InfoLevel, "timeThis(num: 1)")
}

func TestQuiet(t *testing.T) {
	logs := logtest.Capture(t)

	require.Equal(t, 7, quiet())
	logs.RequireEmpty()
}

func TestFunc2(t *testing.T) {
	logs := logtest.Capture(t)

	counter := 0
	func2(&counter)
	require.Equal(t, 1, counter)

	rec := logs.PopLast()
	require.Equal(t, logger.DebugLevel, rec.Level)
	require.Regexp(t, `^func2\(\) => <nil>, ts=\S+s$`, rec.Message)
}

func TestNotDivisibleBy3(t *testing.T) {
	logs := logtest.Capture(t)

	n, err := notDivisibleBy3(4)
	require.NoError(t, err)
	require.Equal(t, uint32(4), n)
	logs.RequireLast(logger.InfoLevel, "notDivisibleBy3() -> 4")

	_, err = notDivisibleBy3(9)
	var divErr *DivisibleError
	require.ErrorAs(t, err, &divErr)
	require.Equal(t, uint32(3), divErr.By)
	logs.RequireLast(logger.ErrorLevel, "notDivisibleBy3() -> 9 is divisible by 3")
}

func TestIsAlive(t *testing.T) {
	logs := logtest.Capture(t)

	tests := []struct {
		person   Person
		expected Status
	}{
		{Person{Name: "Ann", Responds: true}, Alive},
		{Person{Name: "Bob", Awake: true}, Unknown},
		{Person{Name: "Cid"}, Dead},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, test.person.IsAlive())
		logs.RequireLast(logger.WarnLevel, "IsAlive() => "+test.expected.String())
		logs.RequireLast(logger.InfoLevel, "Checking if Person("+test.person.Name+") is alive")
	}
}

func TestSplit(t *testing.T) {
	logs := logtest.Capture(t)

	x, y := split(9)
	require.Equal(t, 4, x)
	require.Equal(t, 5, y)
	logs.RequireLast(logger.DebugLevel, "split() => [4 5]")
}

func TestFirst(t *testing.T) {
	logs := logtest.Capture(t)

	require.Equal(t, "a", first([]string{"a", "b"}))
	logs.RequireLast(logger.InfoLevel, "first() => a")

	require.Equal(t, 3, first([]int{3}))
	logs.RequireLast(logger.InfoLevel, "first() => 3")
}

func TestLevelFilter(t *testing.T) {
	logs := logtest.Capture(t)
	logs.SetLevel(logger.InfoLevel)

	require.Equal(t, 5, addition(2, 3))
	// the trace record of the inputs is filtered out
	logs.RequireLast(logger.InfoLevel, "a + b = 5")
	logs.RequireEmpty()
}
