// Package css compiles the inline style text extracted from trees into
// minified CSS rules.
package css

import (
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

// Compiler turns a selector and declaration text into one minified rule. It
// is satisfied by render.StyleCompiler.
type Compiler interface {
	Compile(selector, declarations string) (string, error)
}

// placeholder stands in for the selector while minifying, so that the
// minified rule only depends on the declarations.
const placeholder = ".__jubako__"

// Minifier is a Compiler backed by the tdewolff CSS minifier. The zero value
// is not usable; use NewMinifier.
type Minifier struct {
	m *minify.M
}

// NewMinifier returns a new Minifier.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	return &Minifier{m}
}

// Compile minifies the rule "selector{declarations}".
func (mf *Minifier) Compile(selector, declarations string) (string, error) {
	rule, err := mf.minify(declarations)
	if err != nil {
		return "", err
	}
	return bind(rule, selector), nil
}

func (mf *Minifier) minify(declarations string) (string, error) {
	if strings.ContainsAny(declarations, "{}") {
		return "", fmt.Errorf("braces in style declarations %q", declarations)
	}
	out, err := mf.m.String("text/css", placeholder+"{"+declarations+"}")
	if err != nil {
		return "", fmt.Errorf("minify %q: %w", declarations, err)
	}
	return out, nil
}

// bind substitutes the selector for the placeholder of a minified rule.
func bind(rule, selector string) string {
	return strings.Replace(rule, placeholder, selector, 1)
}
