package main

import (
	"fmt"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"hex32": func(v uint32) string { return fmt.Sprintf("0x%08X", v) },
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

const chipTmpl = `// Code generated by ppitool gen from {{.Source}}. DO NOT EDIT.

// Package {{.Package}} is the PPI table of the {{.Chip}}{{if .Description}}: {{.Description}}{{end}}.
package {{.Package}}

import (
	"nrfppi/domain"
	"nrfppi/periph"
	"nrfppi/ppi"
)
{{range .Domains}}{{if .Declare}}
// {{.Tag}} is the domain of the {{.Name}} controller.
type {{.Tag}} struct{}

func ({{.Tag}}) ID() domain.ID { return {{.ID}} }
{{if .Fork}}func ({{.Tag}}) ForkCapable() {}
{{end}}{{end}}{{end}}
// Table lists the PPI controllers of the {{.Chip}} and the domain of every
// peripheral that exposes events or tasks.
var Table = domain.Table{
	Chip: {{quote .Chip}},
	Domains: []domain.Spec{
{{- range .Domains}}
		{ID: {{.ID}}, Name: {{quote .Name}}, Base: {{hex32 .Base}}, Channels: {{.Channels}}, Fork: {{.Fork}}},
{{- end}}
	},
	Peripherals: []domain.Membership{
{{- range .Peripherals}}
		{Peripheral: {{quote .Name}}, Domain: {{.Domain}}, Base: {{hex32 .Base}}},
{{- end}}
	},
}
{{range .Domains}}{{if gt .Configurable 0}}
// New{{.Tag}}Pool returns a pool over the configurable channels 0..{{.LastConfigurable}} of {{.Name}}.
func New{{.Tag}}Pool() *ppi.Pool[{{.GoType}}] { return ppi.NewPool[{{.GoType}}](0, {{.Configurable}}) }
{{end}}{{end}}
// Peripheral instances.
var (
{{- range .Peripherals}}
	{{.Name}} = {{.Value}}
{{- end}}
)
`

var chipTemplate = template.Must(template.New("chip").Funcs(funcMap).Parse(chipTmpl))

type chipData struct {
	Source      string
	Package     string
	Chip        string
	Description string
	Domains     []domainData
	Peripherals []peripheralData
}

type domainData struct {
	DomainMeta
	Declare          bool
	GoType           string
	LastConfigurable int
}

type peripheralData struct {
	PeripheralMeta
	Value string
}

// GenerateChip renders the Go table for m. source names the metadata file
// in the header.
func GenerateChip(m *ChipMeta, source string) (string, error) {
	d := chipData{
		Source:      source,
		Package:     m.Package,
		Chip:        m.Chip,
		Description: m.Description,
	}
	types := map[uint8]string{}
	for _, dm := range m.Domains {
		dd := domainData{DomainMeta: dm, Declare: dm.Tag != "MCU", LastConfigurable: dm.Configurable - 1}
		if dd.Declare {
			dd.GoType = dm.Tag
		} else {
			dd.GoType = "domain.MCU"
		}
		types[dm.ID] = dd.GoType
		d.Domains = append(d.Domains, dd)
	}
	for _, pm := range m.Peripherals {
		d.Peripherals = append(d.Peripherals, peripheralData{
			PeripheralMeta: pm,
			Value:          instanceExpr(pm, types[pm.Domain]),
		})
	}

	var b strings.Builder
	if err := chipTemplate.Execute(&b, d); err != nil {
		return "", fmt.Errorf("template chip: %w", err)
	}
	return b.String(), nil
}

func instanceExpr(p PeripheralMeta, goType string) string {
	inst := fmt.Sprintf("periph.Instance[%s]{Name: %q, Base: 0x%08X}", goType, p.Name, p.Base)
	kind := knownKinds[p.Kind]
	if kind == "" {
		return inst
	}
	return fmt.Sprintf("periph.%s[%s]{Instance: %s}", kind, goType, inst)
}
