// Command genevents generates the event kind catalog of package vdom from its
// YAML schema.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

var (
	in  = flag.String("in", "events.yaml", "schema file to read")
	out = flag.String("out", "eventkind_gen.go", "Go file to write")
	pkg = flag.String("pkg", "vdom", "package name of the generated file")
)

type schema struct {
	Events []event `yaml:"events"`
}

type event struct {
	Name    string `yaml:"name"`
	Payload string `yaml:"payload"`
}

func main() {
	flag.Parse()
	if err := run(*in, *out, *pkg); err != nil {
		fmt.Fprintln(os.Stderr, "genevents:", err)
		os.Exit(1)
	}
}

func run(in, out, pkg string) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	code, err := generate(src, pkg)
	if err != nil {
		return err
	}
	return os.WriteFile(out, code, 0644)
}

func generate(src []byte, pkg string) ([]byte, error) {
	var s schema
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := validate(s.Events); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package string
		Events  []event
	}{pkg, s.Events})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func validate(events []event) error {
	if len(events) == 0 {
		return fmt.Errorf("schema has no events")
	}
	if len(events) > 255 {
		return fmt.Errorf("schema has %d events, at most 255 are supported", len(events))
	}
	seen := make(map[string]bool)
	for i, e := range events {
		if e.Name == "" || e.Payload == "" {
			return fmt.Errorf("event #%d: name and payload are required", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("event %s: duplicate name", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

var tmpl = template.Must(template.New("catalog").Parse(`// Code generated by genevents from events.yaml. DO NOT EDIT.

package {{.Package}}

import "encoding/json"

const (
{{- range $i, $e := .Events}}
	Event{{$e.Name}}{{if eq $i 0}} EventKind = iota + 1{{end}}
{{- end}}
)

// NumEventKinds is the number of kinds in the event catalog.
const NumEventKinds = {{len .Events}}

var eventKindNames = [...]string{
{{- range .Events}}
	Event{{.Name}}: "{{.Name}}",
{{- end}}
}

// Handlers holds one handler declaration per event kind.
type Handlers struct {
{{- range .Events}}
	{{.Name}} Handler[{{.Payload}}]
{{- end}}
}

func (h *Handlers) slot(k EventKind) handlerSlot {
	switch k {
{{- range .Events}}
	case Event{{.Name}}:
		return h.{{.Name}}
{{- end}}
	}
	return nil
}

func decodePayload(k EventKind, raw json.RawMessage) (any, error) {
	switch k {
{{- range .Events}}
	case Event{{.Name}}:
		return decodeAs[{{.Payload}}](raw)
{{- end}}
	}
	return nil, errUnknownKind
}
`))
