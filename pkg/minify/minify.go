// Package minify shrinks inline JavaScript and CSS snippets.
package minify

import (
	"errors"
	"sync"

	tdminify "github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

const (
	MediaTypeCSS = "text/css"
	MediaTypeJS  = "application/javascript"
)

var (
	ErrMinifyCSS = errors.New("failed to minify css")
	ErrMinifyJS  = errors.New("failed to minify javascript")
)

// Minifier minifies CSS and JavaScript. It is safe for concurrent use.
type Minifier struct {
	m *tdminify.M
}

// New returns a Minifier with the CSS and JavaScript minifiers registered.
func New() *Minifier {
	m := tdminify.New()
	m.AddFunc(MediaTypeCSS, css.Minify)
	m.AddFunc(MediaTypeJS, js.Minify)
	return &Minifier{m: m}
}

// CSS minifies a stylesheet.
func (m *Minifier) CSS(s string) (string, error) {
	out, err := m.m.String(MediaTypeCSS, s)
	if err != nil {
		return "", errors.Join(ErrMinifyCSS, err)
	}
	return out, nil
}

// JS minifies a script.
func (m *Minifier) JS(s string) (string, error) {
	out, err := m.m.String(MediaTypeJS, s)
	if err != nil {
		return "", errors.Join(ErrMinifyJS, err)
	}
	return out, nil
}

var (
	defaultOnce     sync.Once
	defaultMinifier *Minifier
)

// Default returns a shared Minifier.
func Default() *Minifier {
	defaultOnce.Do(func() { defaultMinifier = New() })
	return defaultMinifier
}
