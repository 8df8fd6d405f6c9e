package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const smallSchema = `
events:
  - {name: Click, payload: MouseEvent}
  - {name: KeyDown, payload: KeyboardEvent}
`

func TestGenerate(t *testing.T) {
	code, err := generate([]byte(smallSchema), "vdom")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Code generated by genevents from events.yaml. DO NOT EDIT.",
		"package vdom",
		"EventClick EventKind = iota + 1",
		"const NumEventKinds = 2",
		`EventKeyDown: "KeyDown"`,
		"Handler[KeyboardEvent]",
		"return decodeAs[MouseEvent](raw)",
	} {
		if !strings.Contains(string(code), want) {
			t.Errorf("generated code does not contain %q:\n%s", want, code)
		}
	}
}

var generateErrorTests = []struct {
	name   string
	schema string
	want   string
}{
	{"no events", "events: []", "no events"},
	{"missing payload", "events:\n  - {name: Click}", "name and payload are required"},
	{"duplicate", "events:\n  - {name: Click, payload: A}\n  - {name: Click, payload: B}", "duplicate"},
	{"unknown field", "events:\n  - {name: Click, payload: A, bubbles: true}", "bubbles"},
	{"not yaml", "events: [", "parse schema"},
}

func TestGenerate_Errors(t *testing.T) {
	for _, test := range generateErrorTests {
		t.Run(test.name, func(t *testing.T) {
			_, err := generate([]byte(test.schema), "vdom")
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("got error %v, want one containing %q", err, test.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "events.yaml")
	out := filepath.Join(dir, "gen.go")
	if err := os.WriteFile(in, []byte(smallSchema), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run(in, out, "events"); err != nil {
		t.Fatal(err)
	}
	code, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "package events") {
		t.Errorf("output does not declare package events:\n%s", code)
	}
}

func TestSchemaOfVdom(t *testing.T) {
	src, err := os.ReadFile("../../pkg/vdom/events.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := generate(src, "vdom"); err != nil {
		t.Errorf("events.yaml of vdom does not generate: %v", err)
	}
}
