// Package catalog serves the read-only journal catalog: academic fields, each
// split into Q1..Q4 journal lists with impact factors.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed journals.yaml
var journalsYAML []byte

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownQuartile = errors.New("unknown quartile")
)

type Quartile string

const (
	Q1 Quartile = "Q1"
	Q2 Quartile = "Q2"
	Q3 Quartile = "Q3"
	Q4 Quartile = "Q4"
)

// Quartiles lists the quartiles best first.
var Quartiles = []Quartile{Q1, Q2, Q3, Q4}

// ParseQuartile accepts Q1..Q4 in any case.
func ParseQuartile(s string) (Quartile, error) {
	q := Quartile(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Quartiles {
		if q == known {
			return q, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuartile, s)
}

type Journal struct {
	Name      string
	Website   string
	Impact    decimal.Decimal
	Publisher string
	Quartile  Quartile
}

type field struct {
	name      string
	quartiles map[Quartile][]Journal
}

// Catalog is immutable once loaded.
type Catalog struct {
	fields []field
}

type rawCatalog struct {
	Fields []struct {
		Name      string                  `yaml:"name"`
		Quartiles map[string][]rawJournal `yaml:"quartiles"`
	} `yaml:"fields"`
}

type rawJournal struct {
	Name      string `yaml:"name"`
	Website   string `yaml:"website"`
	Impact    string `yaml:"impact"`
	Publisher string `yaml:"publisher"`
}

// Load decodes the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(journalsYAML)
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{fields: make([]field, 0, len(raw.Fields))}
	for _, rf := range raw.Fields {
		f := field{name: rf.Name, quartiles: make(map[Quartile][]Journal, len(Quartiles))}
		for key, journals := range rf.Quartiles {
			q, err := ParseQuartile(key)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", rf.Name, err)
			}
			for _, rj := range journals {
				impact, err := decimal.NewFromString(rj.Impact)
				if err != nil {
					return nil, fmt.Errorf("field %q journal %q: impact %q: %w", rf.Name, rj.Name, rj.Impact, err)
				}
				f.quartiles[q] = append(f.quartiles[q], Journal{
					Name:      rj.Name,
					Website:   rj.Website,
					Impact:    impact,
					Publisher: rj.Publisher,
					Quartile:  q,
				})
			}
		}
		c.fields = append(c.fields, f)
	}
	return c, nil
}

// Fields returns field names in catalog order.
func (c *Catalog) Fields() []string {
	names := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		names = append(names, f.name)
	}
	return names
}

func (c *Catalog) field(name string) (field, error) {
	for _, f := range c.fields {
		if f.name == name {
			return f, nil
		}
	}
	return field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Journals returns one quartile of a field in catalog order.
func (c *Catalog) Journals(fieldName string, q Quartile) ([]Journal, error) {
	f, err := c.field(fieldName)
	if err != nil {
		return nil, err
	}
	if _, err := ParseQuartile(string(q)); err != nil {
		return nil, err
	}
	return append([]Journal{}, f.quartiles[q]...), nil
}

// TopByImpact ranks every journal of a field by impact factor, highest first.
// Ties keep catalog order. n <= 0 returns the full ranking.
func (c *Catalog) TopByImpact(fieldName string, n int) ([]Journal, error) {
	f, err := c.field(fieldName)
	if err != nil {
		return nil, err
	}
	var all []Journal
	for _, q := range Quartiles {
		all = append(all, f.quartiles[q]...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Impact.GreaterThan(all[j].Impact)
	})
	if n > 0 && n < len(all) {
		all = all[:n]
	}
	return all, nil
}
