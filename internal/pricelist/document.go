// Package pricelist fetches and parses the YAML price lists partners publish.
package pricelist

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var ErrInvalidDocument = errors.New("invalid price list")

// Column limits of the tables an import writes to.
const (
	maxShopName       = 100
	maxCategoryName   = 100
	maxProductName    = 255
	maxModel          = 255
	maxParameterName  = 100
	maxParameterValue = 255
	maxQuantity       = math.MaxInt32
)

type Document struct {
	Shop       string     `yaml:"shop"`
	Categories []Category `yaml:"categories"`
	Goods      []Good     `yaml:"goods"`
}

type Category struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type Good struct {
	ID         int64      `yaml:"id"`
	Category   int64      `yaml:"category"`
	Model      string     `yaml:"model"`
	Name       string     `yaml:"name"`
	Price      int64      `yaml:"price"`
	PriceRRC   int64      `yaml:"price_rrc"`
	Quantity   int        `yaml:"quantity"`
	Parameters Parameters `yaml:"parameters"`
}

type Parameter struct {
	Name  string
	Value string
}

// Parameters keeps the document order of a name: value mapping.
type Parameters []Parameter

func (p *Parameters) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: parameters must be a mapping", value.Line)
	}

	params := make(Parameters, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: parameter %q must be a scalar", val.Line, key.Value)
		}
		params = append(params, Parameter{Name: key.Value, Value: val.Value})
	}

	*p = params
	return nil
}

// Parse decodes data and checks that every good references a declared category.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

func (d *Document) validate() error {
	if d.Shop == "" {
		return fmt.Errorf("%w: shop name is missing", ErrInvalidDocument)
	}
	if tooLong(d.Shop, maxShopName) {
		return fmt.Errorf("%w: shop name is longer than %d characters", ErrInvalidDocument, maxShopName)
	}

	categories := make(map[int64]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if c.ID < 1 || c.Name == "" {
			return fmt.Errorf("%w: category %d needs a positive id and a name", ErrInvalidDocument, c.ID)
		}
		if tooLong(c.Name, maxCategoryName) {
			return fmt.Errorf("%w: category %d name is longer than %d characters", ErrInvalidDocument, c.ID, maxCategoryName)
		}
		categories[c.ID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(d.Goods))
	for _, g := range d.Goods {
		switch {
		case g.ID < 1:
			return fmt.Errorf("%w: good %q has no id", ErrInvalidDocument, g.Name)
		case g.Name == "":
			return fmt.Errorf("%w: good %d has no name", ErrInvalidDocument, g.ID)
		case g.Price < 0 || g.PriceRRC < 0 || g.Quantity < 0:
			return fmt.Errorf("%w: good %d has a negative price or quantity", ErrInvalidDocument, g.ID)
		case g.Quantity > maxQuantity:
			return fmt.Errorf("%w: good %d quantity exceeds %d", ErrInvalidDocument, g.ID, maxQuantity)
		case tooLong(g.Name, maxProductName):
			return fmt.Errorf("%w: good %d name is longer than %d characters", ErrInvalidDocument, g.ID, maxProductName)
		case tooLong(g.Model, maxModel):
			return fmt.Errorf("%w: good %d model is longer than %d characters", ErrInvalidDocument, g.ID, maxModel)
		}
		for _, p := range g.Parameters {
			if p.Name == "" || tooLong(p.Name, maxParameterName) {
				return fmt.Errorf("%w: good %d has a parameter name that is empty or longer than %d characters",
					ErrInvalidDocument, g.ID, maxParameterName)
			}
			if tooLong(p.Value, maxParameterValue) {
				return fmt.Errorf("%w: good %d parameter %q is longer than %d characters",
					ErrInvalidDocument, g.ID, p.Name, maxParameterValue)
			}
		}
		if _, ok := categories[g.Category]; !ok {
			return fmt.Errorf("%w: good %d references unknown category %d", ErrInvalidDocument, g.ID, g.Category)
		}
		if _, dup := seen[g.ID]; dup {
			return fmt.Errorf("%w: good %d is listed twice", ErrInvalidDocument, g.ID)
		}
		seen[g.ID] = struct{}{}
	}

	return nil
}

// ExternalIDs returns the ids of all goods in document order.
func (d *Document) ExternalIDs() []int64 {
	ids := make([]int64, 0, len(d.Goods))
	for _, g := range d.Goods {
		ids = append(ids, g.ID)
	}
	return ids
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}
