// Package indent provides immutable, cacheable indentation values and a
// writer decorator that indents every new line it forwards.
//
// # Indentation
//
// An Indentation is an immutable value combining an indentation unit (the
// string repeated once per level) with a level. Indenting and unindenting
// return other instances and never modify the original:
//
//	ind := indent.TwoSpaces.Indent().Indent()
//	fmt.Printf("%q", ind) // "    "
//
// The four common units (none, tab, two spaces, four spaces) are shared
// package-level instances with deep level caches, so repeated lookups of
// common indentations allocate nothing:
//
//	indent.Of("  ") == indent.TwoSpaces // true
//
// # Writer
//
// Writer wraps any io.Writer and inserts the current indentation before
// the first character of every non-empty line:
//
//	var buf bytes.Buffer
//	w := indent.MustNewWriter(&buf, indent.TwoSpaces)
//	w.WriteString("func main() {")
//	w.Indent().WriteString("\nprintln(\"hi\")")
//	w.Unindent().WriteString("\n}")
//	// buf: "func main() {\n  println(\"hi\")\n}"
//
// Blank lines and carriage-return/line-feed pairs are never indented, and
// line boundaries are tracked across Write calls, so chunked output
// behaves identically to a single write.
//
// The writer provides no buffering; wrap the delegate in a bufio.Writer
// to buffer the output.
//
// # Serialization
//
// An Indentation serializes minimally as its unit and level, in JSON or
// YAML. Deserialization rebuilds the value through Of(unit).AtLevel(level)
// so common indentations resolve back to the shared cached instances.
//
// # Error Handling
//
// All failures are *cuserr.CustomError values with stable message and
// code constants plus metadata identifying the offending argument:
//
//	_, err := indent.Tabs.AtLevel(-1)
//	// err: validation error, metadata level="-1"
package indent
