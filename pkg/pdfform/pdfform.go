// Package pdfform fills named AcroForm text fields of a fixed PDF
// template. It is a thin wrapper over pdfcpu: the template bytes are read
// once per process, each fill works on its own in-memory copy, and
// bindings that do not resolve to a text field in the template are
// dropped rather than failing the document.
package pdfform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"regexp"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Field is one named text field and the value to write into it.
type Field struct {
	Name  string
	Value string
}

// Filler fills a single template asset located at a fixed path.
type Filler struct {
	path string
	conf *model.Configuration

	once     sync.Once
	template []byte
	loadErr  error
}

// New returns a Filler for the template at path. The file is not touched
// until the first fill.
func New(path string) *Filler {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	// Plain xref and uncompressed objects: the info dict and trailer
	// stay readable so stabilize can pin their volatile entries.
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	return &Filler{path: path, conf: conf}
}

// Fill writes the given values into the template's text form fields and
// returns the serialized document. A field absent from the template, or
// present as a non-text widget, is skipped silently; the remaining fields
// are still written. Template load or parse failures abort the whole fill.
func (f *Filler) Fill(fields []Field) ([]byte, error) {
	template, err := f.load()
	if err != nil {
		return nil, err
	}

	existing, err := api.FormFields(bytes.NewReader(template), f.conf)
	if err != nil {
		return nil, fmt.Errorf("parse template form: %w", err)
	}

	matched := selectTextFields(existing, fields)
	if len(matched) == 0 {
		out := make([]byte, len(template))
		copy(out, template)
		return out, nil
	}

	payload, err := fillPayload(matched)
	if err != nil {
		return nil, fmt.Errorf("build fill payload: %w", err)
	}

	var buf bytes.Buffer
	if err := api.FillForm(bytes.NewReader(template), bytes.NewReader(payload), &buf, f.conf); err != nil {
		return nil, fmt.Errorf("fill form: %w", err)
	}
	return stabilize(buf.Bytes(), fillSeed(template, payload)), nil
}

// load reads and caches the template bytes. The asset is immutable for
// the life of the process, so the cache is populated at most once.
func (f *Filler) load() ([]byte, error) {
	f.once.Do(func() {
		f.template, f.loadErr = os.ReadFile(f.path)
	})
	if f.loadErr != nil {
		return nil, fmt.Errorf("read template %s: %w", f.path, f.loadErr)
	}
	return f.template, nil
}

// selectTextFields keeps the requested fields that resolve to a text
// field in the template, preserving request order.
func selectTextFields(existing []form.Field, requested []Field) []Field {
	textFields := make(map[string]struct{}, len(existing))
	for _, fld := range existing {
		if fld.Typ == form.FTText {
			textFields[fld.Name] = struct{}{}
		}
	}

	kept := make([]Field, 0, len(requested))
	for _, fld := range requested {
		if _, ok := textFields[fld.Name]; ok {
			kept = append(kept, fld)
		}
	}
	return kept
}

var (
	pdfDatePattern   = regexp.MustCompile(`D:\d{14}(?:[+\-]\d{2}'\d{2}')?`)
	trailerIDPattern = regexp.MustCompile(`/ID\s*\[\s*<[0-9a-fA-F]+>\s*<[0-9a-fA-F]+>\s*\]`)
	hexStringPattern = regexp.MustCompile(`<[0-9a-fA-F]+>`)
)

const pinnedDate = "D:20000101000000+00'00'"

// stabilize rewrites the volatile bytes the writer stamps into a filled
// document. CreationDate, ModDate and the trailer file ID are all
// derived from the wall clock, so two fills of the same template and
// record would otherwise never serialize identically. Replacements keep
// the exact byte length of what they overwrite; every xref offset in the
// document stays valid.
func stabilize(doc []byte, seed uint64) []byte {
	doc = pdfDatePattern.ReplaceAllFunc(doc, func(m []byte) []byte {
		out := make([]byte, len(m))
		copy(out, pinnedDate)
		for i := len(pinnedDate); i < len(out); i++ {
			out[i] = '0'
		}
		return out
	})

	doc = trailerIDPattern.ReplaceAllFunc(doc, func(m []byte) []byte {
		return hexStringPattern.ReplaceAllFunc(m, func(h []byte) []byte {
			out := make([]byte, len(h))
			out[0], out[len(out)-1] = '<', '>'
			copy(out[1:len(out)-1], deterministicHex(seed, len(h)-2))
			return out
		})
	})

	return doc
}

// fillSeed keys the pinned file ID to the inputs: the same template and
// record always get the same ID, different records get different ones.
func fillSeed(template, payload []byte) uint64 {
	h := fnv.New64a()
	h.Write(template)
	h.Write(payload)
	return h.Sum64()
}

func deterministicHex(seed uint64, n int) []byte {
	const digits = "0123456789abcdef"
	out := make([]byte, n)
	state := seed
	for i := range out {
		state = state*6364136223846793005 + 1442695040888963407
		out[i] = digits[state>>60&0xf]
	}
	return out
}

type fillTextField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Locked bool   `json:"locked"`
}

type fillFormGroup struct {
	TextFields []fillTextField `json:"textfield"`
}

type fillDocument struct {
	Forms []fillFormGroup `json:"forms"`
}

// fillPayload builds the JSON document pdfcpu's form fill consumes.
// Marshalling is deterministic for a given field sequence.
func fillPayload(fields []Field) ([]byte, error) {
	doc := fillDocument{Forms: []fillFormGroup{{TextFields: make([]fillTextField, 0, len(fields))}}}
	for _, fld := range fields {
		doc.Forms[0].TextFields = append(doc.Forms[0].TextFields, fillTextField{Name: fld.Name, Value: fld.Value})
	}
	return json.Marshal(doc)
}
