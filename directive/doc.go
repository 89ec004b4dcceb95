// Package directive parses the arguments of logfn directives.
//
// Two directives are recognized in a function's doc comment:
//
//	//logfn:output <level>, ok = <level>, err = <level>, fmt = "<template>", log_ts = <bool>
//	//logfn:inputs <level>, "<template>"
//
// The output directive takes an optional leading level followed by any of the named options, each
// at most once. The success log uses ok, falling back to the leading level; the failure log uses
// err with the same fallback. A directive without any level is legal and emits nothing.
//
// The inputs directive takes a required level and an optional format string, which can also be
// written as `fmt = "<template>"`.
//
// Levels are case-insensitive and must be one of Error, Warn, Info, Debug or Trace. Templates use
// `{}` placeholders, see logger.Format.
//
// All errors wrap one of the package's sentinel errors, e.g. ErrUnknownOption, and name the
// offending option.
package directive
