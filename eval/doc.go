// Package eval evaluates expr-lang expressions against a materialized
// document.
//
// The top level fields of an object document are in scope as variables,
// and the whole document is available as doc:
//
//	v, err := eval.Eval(res.Value, `replicas * 2`, nil)
//	v, err := eval.Eval(res.Value, `getpath("$.server.ports[0]").port`, nil)
//
// Functions:
//
//	getpath(jsonpath)   the value at jsonpath, or nil
//	haspath(jsonpath)   whether jsonpath resolves in the document
//	pointer(jsonpath)   the JSON pointer form of jsonpath
//	getenv(name)        the OS environment variable name
package eval
