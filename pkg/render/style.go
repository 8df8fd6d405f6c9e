package render

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// StylePrefix is the prefix of generated style class names.
const StylePrefix = "style-"

// StyleCompiler turns a selector and inline declaration text into one minified
// CSS rule.
type StyleCompiler interface {
	Compile(selector, declarations string) (string, error)
}

// StyleCompilerFunc adapts a function to StyleCompiler.
type StyleCompilerFunc func(selector, declarations string) (string, error)

func (f StyleCompilerFunc) Compile(selector, declarations string) (string, error) {
	return f(selector, declarations)
}

// PlainStyles is a StyleCompiler that wraps the declarations without
// minifying them.
var PlainStyles StyleCompiler = StyleCompilerFunc(func(selector, declarations string) (string, error) {
	return selector + "{" + strings.TrimSpace(declarations) + "}", nil
})

// styleRegistry maps exact inline style text to the id of its generated class.
// An id stays registered only while the tree reconciled last still references
// it.
type styleRegistry struct {
	ids       map[string]string
	compiler  StyleCompiler
	newID     func() string
	onCompile func(class string, err error)
}

func newStyleRegistry(c StyleCompiler) *styleRegistry {
	return &styleRegistry{
		ids:      make(map[string]string),
		compiler: c,
		newID:    uuid.NewString,
	}
}

func styleClass(id string) string { return StylePrefix + id }

// styleCycle is the bookkeeping of one extraction pass.
type styleCycle struct {
	reg *styleRegistry
	// Registered ids referenced in this cycle.
	touched map[string]bool
	// Ids allocated in this cycle, by style text, and their discovery order.
	fresh      map[string]string
	freshOrder []string
}

// extractStyles replaces the inline style of every element in the tree with a
// generated class, in depth-first pre-order. It returns the style commands of
// the cycle: removals of classes no longer referenced, followed by additions
// of newly allocated classes.
func (r *styleRegistry) extractStyles(root *node) []StyleCommand {
	c := &styleCycle{
		reg:     r,
		touched: make(map[string]bool),
		fresh:   make(map[string]string),
	}
	c.walk(root)
	return c.commit()
}

func (c *styleCycle) walk(n *node) {
	if n.kind == elementNode && n.style != "" {
		n.classes = append(n.classes, styleClass(c.lookup(n.style)))
		n.style = ""
	}
	for _, child := range n.children {
		c.walk(child)
	}
}

func (c *styleCycle) lookup(text string) string {
	if id, ok := c.reg.ids[text]; ok {
		c.touched[id] = true
		return id
	}
	if id, ok := c.fresh[text]; ok {
		return id
	}
	id := c.reg.newID()
	c.fresh[text] = id
	c.freshOrder = append(c.freshOrder, text)
	return id
}

func (c *styleCycle) commit() []StyleCommand {
	var removed []string
	for text, id := range c.reg.ids {
		if !c.touched[id] {
			delete(c.reg.ids, text)
			removed = append(removed, styleClass(id))
		}
	}
	sort.Strings(removed)

	cmds := make([]StyleCommand, 0, len(removed)+len(c.freshOrder))
	for _, class := range removed {
		cmds = append(cmds, RemoveStyle{ClassName: class})
	}
	for _, text := range c.freshOrder {
		id := c.fresh[text]
		c.reg.ids[text] = id
		class := styleClass(id)
		rule, err := c.reg.compiler.Compile("."+class, text)
		if err != nil {
			rule, _ = PlainStyles.Compile("."+class, text)
		}
		if c.reg.onCompile != nil {
			c.reg.onCompile(class, err)
		}
		cmds = append(cmds, AddStyle{ClassName: class, Value: rule})
	}
	return cmds
}

func (r *styleRegistry) reset() { clear(r.ids) }

// len returns the number of registered styles.
func (r *styleRegistry) len() int { return len(r.ids) }
