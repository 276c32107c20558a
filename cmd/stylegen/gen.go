package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/serenize/snaker"

	"github.com/elliotmr/winstyle/w32/types"
	"github.com/elliotmr/winstyle/w32/types/style"
)

const headerTmpl = `// Code generated by stylegen. DO NOT EDIT.
{{range .}}
// {{.Title}}
{{range .Defines}}
#define {{.Name}} {{.Expr}}
{{- end}}
{{end}}`

var T = template.Must(template.New("header").Parse(headerTmpl))

type define struct {
	Name string
	Expr string
}

type headerFamily struct {
	Title   string
	Defines []define
}

// selectFamilies turns a comma separated prefix list into families. Prefixes
// are case insensitive and the trailing underscore is optional. An empty
// list selects everything.
func selectFamilies(list string) ([]*style.Family, error) {
	if strings.TrimSpace(list) == "" {
		return types.Families(), nil
	}
	var out []*style.Family
	for _, p := range strings.Split(list, ",") {
		p = strings.ToUpper(strings.TrimSpace(p))
		if !strings.HasSuffix(p, "_") {
			p += "_"
		}
		f, ok := types.Family(p)
		if !ok {
			return nil, errors.Errorf("unknown family %q", p)
		}
		out = append(out, f)
	}
	return out, nil
}

func literal(fl style.Flag) string {
	if fl.Kind == style.Value && fl.Value != 0 {
		return fmt.Sprintf("%d", fl.Value)
	}
	return fmt.Sprintf("0x%08X", fl.Value)
}

// expr renders the right hand side of a #define. Aggregates and aliases stay
// symbolic as long as every name they refer to is also emitted.
func expr(fl style.Flag, emitted map[string]bool) string {
	switch fl.Kind {
	case style.Aggregate:
		for _, n := range fl.Of {
			if !emitted[n] {
				return literal(fl)
			}
		}
		return "(" + strings.Join(fl.Of, " | ") + ")"
	case style.Alias:
		if emitted[fl.Of[0]] {
			return fl.Of[0]
		}
	}
	return literal(fl)
}

func writeHeader(w io.Writer, fams []*style.Family) error {
	emitted := map[string]bool{}
	for _, f := range fams {
		for _, fl := range f.Flags {
			emitted[fl.Name] = true
		}
	}

	view := make([]headerFamily, 0, len(fams))
	for _, f := range fams {
		width := 0
		for _, fl := range f.Flags {
			if len(fl.Name) > width {
				width = len(fl.Name)
			}
		}
		hf := headerFamily{Title: f.Title}
		for _, fl := range f.Flags {
			hf.Defines = append(hf.Defines, define{
				Name: fmt.Sprintf("%-*s", width, fl.Name),
				Expr: expr(fl, emitted),
			})
		}
		view = append(view, hf)
	}
	return errors.Wrap(T.Execute(w, view), "unable to render header")
}

type jsonFlag struct {
	Name  string   `json:"name"`
	Value uint32   `json:"value"`
	Hex   string   `json:"hex"`
	Kind  string   `json:"kind"`
	Of    []string `json:"of,omitempty"`
}

type jsonFamily struct {
	Key    string     `json:"key"`
	Title  string     `json:"title"`
	Prefix string     `json:"prefix"`
	Flags  []jsonFlag `json:"flags"`
}

func writeJSON(w io.Writer, fams []*style.Family) error {
	out := make([]jsonFamily, 0, len(fams))
	for _, f := range fams {
		jf := jsonFamily{
			Key:    snaker.CamelToSnake(f.Type),
			Title:  strings.TrimSuffix(f.Title, "."),
			Prefix: f.Prefix,
		}
		for _, fl := range f.Flags {
			jf.Flags = append(jf.Flags, jsonFlag{
				Name:  fl.Name,
				Value: fl.Value,
				Hex:   fmt.Sprintf("0x%08X", fl.Value),
				Kind:  fl.Kind.String(),
				Of:    fl.Of,
			})
		}
		out = append(out, jf)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "unable to encode json")
}

func generate(w io.Writer, format string, fams []*style.Family) error {
	switch format {
	case "h", "":
		return writeHeader(w, fams)
	case "json":
		return writeJSON(w, fams)
	}
	return errors.Errorf("unknown format %q", format)
}

// check validates each family and returns every failure.
func check(fams []*style.Family) []error {
	var errs []error
	for _, f := range fams {
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
