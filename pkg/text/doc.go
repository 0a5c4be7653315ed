// Package text provides small, stateless string transforms used by template
// helpers: line break conversion, whitespace cleanup, phone links, heading
// level arithmetic and selector building.
//
// All helpers are plain functions over strings and can be chained with the
// higher-order Apply and Compose helpers:
//
//	clean := text.Compose(
//	    text.RemoveNbsp,
//	    text.Nl2brDefault,
//	)
//
//	html := clean("Hello&nbsp;&nbsp;World\nBye") // "Hello World<br>Bye"
//
// The package depends only on the Go standard library.
package text
