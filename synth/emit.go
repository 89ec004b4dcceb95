package synth

import (
	"strconv"
	"strings"

	"github.com/arloliu/go-logfn/logger"
	"github.com/arloliu/go-logfn/signature"
	"github.com/arloliu/go-logfn/wrap"
)

// Identifiers declared by generated code.
const (
	varStart   = "logfnStart"
	varElapsed = "logfnElapsed"
	varVal     = "logfnVal"
	varErr     = "logfnErr"
	varOut     = "logfnOut"
	varCh      = "logfnCh"
	varOK      = "logfnOK"
)

// emitter renders the statements of one generated body.
type emitter struct {
	sb        strings.Builder
	facade    string
	template  string // quoted
	shape     signature.Shape
	branching bool
	timed     bool
	okLevel   logger.Level
	errLevel  logger.Level
	hasOk     bool
	hasErr    bool
}

func resultVar(i int) string {
	return "logfnRes" + strconv.Itoa(i)
}

func (e *emitter) line(parts ...string) {
	for _, p := range parts {
		e.sb.WriteString(p)
	}
	e.sb.WriteByte('\n')
}

// immediate renders a body that invokes the wrapped unit synchronously.
func (e *emitter) immediate(body wrap.Body) string {
	n := e.shape.Results
	vars := make([]string, n)
	for i := range vars {
		vars[i] = resultVar(i)
	}

	e.line("{")
	if e.timed {
		e.line(varStart, " := time.Now()")
	}
	if n == 0 {
		e.line(body.Invoke)
	} else {
		e.line(strings.Join(vars, ", "), " := ", body.Invoke)
	}
	if e.timed {
		e.line(varElapsed, " := time.Since(", varStart, ")")
	}
	e.logs(vars)
	if n > 0 {
		e.line("return ", strings.Join(vars, ", "))
	}
	e.line("}")

	return e.sb.String()
}

// suspending renders a body that invokes the wrapped unit on the caller's goroutine, awaits its
// channel in a goroutine and forwards the value on a new channel, so the caller still receives
// exactly one value from the returned channel.
func (e *emitter) suspending(body wrap.Body) string {
	res := resultVar(0)

	e.line("{")
	if e.timed {
		e.line(varStart, " := time.Now()")
	}
	e.line(varCh, " := ", body.Invoke)
	e.line(varOut, " := make(chan ", body.Elem, ", 1)")
	e.line("go func() {")
	e.line("defer close(", varOut, ")")
	e.line(res, ", ", varOK, " := <-", varCh)
	e.line("if !", varOK, " {")
	e.line("return")
	e.line("}")
	if e.timed {
		e.line(varElapsed, " := time.Since(", varStart, ")")
	}
	e.logs([]string{res})
	e.line(varOut, " <- ", res)
	e.line("}()")
	e.line("return ", varOut)
	e.line("}")

	return e.sb.String()
}

// logs renders the log statements for the result variables.
func (e *emitter) logs(vars []string) {
	if !e.branching {
		if e.hasOk {
			e.line(e.call(e.okLevel, value(vars)))
		}
		return
	}

	switch e.shape.Outcome {
	case signature.OutcomeErrorTuple:
		errVar := vars[len(vars)-1]
		okValue := value(vars[:len(vars)-1])
		switch {
		case e.hasOk && e.hasErr:
			e.line("if ", errVar, " != nil {")
			e.line(e.call(e.errLevel, errVar))
			e.line("} else {")
			e.line(e.call(e.okLevel, okValue))
			e.line("}")
		case e.hasOk:
			e.line("if ", errVar, " == nil {")
			e.line(e.call(e.okLevel, okValue))
			e.line("}")
		case e.hasErr:
			e.line("if ", errVar, " != nil {")
			e.line(e.call(e.errLevel, errVar))
			e.line("}")
		}
	case signature.OutcomeValue:
		get := vars[0] + ".Get()"
		switch {
		case e.hasOk && e.hasErr:
			e.line("if ", varVal, ", ", varErr, " := ", get, "; ", varErr, " != nil {")
			e.line(e.call(e.errLevel, varErr))
			e.line("} else {")
			e.line(e.call(e.okLevel, varVal))
			e.line("}")
		case e.hasOk:
			e.line("if ", varVal, ", ", varErr, " := ", get, "; ", varErr, " == nil {")
			e.line(e.call(e.okLevel, varVal))
			e.line("}")
		case e.hasErr:
			e.line("if _, ", varErr, " := ", get, "; ", varErr, " != nil {")
			e.line(e.call(e.errLevel, varErr))
			e.line("}")
		}
	}
}

// call renders a facade call with arg, followed by the elapsed time when timing is on.
func (e *emitter) call(lv logger.Level, arg string) string {
	args := []string{levelExpr(e.facade, lv), e.template, arg}
	if e.timed {
		args = append(args, varElapsed)
	}

	return e.facade + ".Log(" + strings.Join(args, ", ") + ")"
}

// value renders the logged value of a result list: nothing is nil, one value is itself and
// several values are collected in a slice.
func value(vars []string) string {
	switch len(vars) {
	case 0:
		return "nil"
	case 1:
		return vars[0]
	default:
		return "[]any{" + strings.Join(vars, ", ") + "}"
	}
}
