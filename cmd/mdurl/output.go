package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aleister1102/mdurl/internal/config"
	"github.com/aleister1102/mdurl/internal/linkextractor"
	"github.com/aleister1102/mdurl/internal/models"
	"github.com/aleister1102/mdurl/internal/roundtrip"
	"github.com/aleister1102/mdurl/internal/urlparse"

	"gopkg.in/yaml.v3"
)

// outputRenderer prints results as text lines, a JSON array or a YAML sequence
type outputRenderer struct {
	w      io.Writer
	format string
}

func newOutputRenderer(w io.Writer, format string) *outputRenderer {
	return &outputRenderer{w: w, format: format}
}

// encode writes v in the structured formats and reports whether it did
func (r *outputRenderer) encode(v any) (bool, error) {
	switch r.format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return true, enc.Encode(v)
	case config.OutputFormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func (r *outputRenderer) renderResults(mode string, results []models.FormatResult) error {
	if done, err := r.encode(results); done {
		return err
	}

	for _, res := range results {
		var err error
		switch mode {
		case config.ModeComputer:
			_, err = fmt.Fprintln(r.w, res.Computer)
		case config.ModeParse:
			err = r.writeURLFields(res.Input, res.URL)
		default:
			_, err = fmt.Fprintln(r.w, res.Human)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeURLFields prints the input followed by one indented line per present component
func (r *outputRenderer) writeURLFields(input string, u urlparse.URL) error {
	if _, err := fmt.Fprintln(r.w, input); err != nil {
		return err
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"protocol", u.Protocol},
		{"auth", u.Auth},
		{"hostname", u.Hostname},
		{"port", u.Port},
		{"pathname", u.Pathname},
		{"search", u.Search},
		{"hash", u.Hash},
	}

	if _, err := fmt.Fprintf(r.w, "  slashes: %t\n", u.Slashes); err != nil {
		return err
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if _, err := fmt.Fprintf(r.w, "  %s: %q\n", f.name, *f.value); err != nil {
			return err
		}
	}
	return nil
}

func (r *outputRenderer) renderChecks(results []roundtrip.Result) error {
	if done, err := r.encode(results); done {
		return err
	}

	for _, res := range results {
		var err error
		if res.OK {
			_, err = fmt.Fprintf(r.w, "OK\t%s\n", res.Input)
		} else {
			_, err = fmt.Fprintf(r.w, "FAIL\t%s\t%s\n", res.Input, res.Diff)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *outputRenderer) renderLinks(links []linkextractor.Link) error {
	if done, err := r.encode(links); done {
		return err
	}

	for _, l := range links {
		if _, err := fmt.Fprintf(r.w, "%s[%s]\t%s\t%s\n", l.Tag, l.Attribute, l.Human, l.Computer); err != nil {
			return err
		}
	}
	return nil
}
