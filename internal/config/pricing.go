package config

// This file loads the static pricing and catalog table consumed by
// the billing engine: courts, the bar product catalog and the fixed
// share menus for cost splitting.  The table can be supplied as a
// YAML file via PRICING_FILE; when no file is given, the compiled-in
// defaults below are used.  The table is reference data and is never
// mutated after startup.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielfranchi555/padelAdministration/internal/model"
)

// Pricing bundles every static rate the engine needs.  ShareOptions
// lists the allowed cost-split divisors for both the court and the
// ball-tube dimension.
type Pricing struct {
	Courts        []model.Court      `yaml:"courts"`
	BarProducts   []model.BarProduct `yaml:"bar_products"`
	TubePrice     float64            `yaml:"tube_price"`
	OwnerRate     float64            `yaml:"owner_rate"`
	OvergripPrice float64            `yaml:"overgrip_price"`
	ShareOptions  []int              `yaml:"share_options"`
}

// DefaultPricing returns the built-in table: four indoor courts at
// 50, two outdoor courts at 40, the standard bar catalog, a 6 euro
// ball tube, a flat 10 euro owner rate and a 2.50 overgrip add-on.
func DefaultPricing() *Pricing {
	return &Pricing{
		Courts: []model.Court{
			{ID: 1, Name: "Court 1 (Indoor)", Category: model.CourtIndoor, Price: 50},
			{ID: 2, Name: "Court 2 (Indoor)", Category: model.CourtIndoor, Price: 50},
			{ID: 3, Name: "Court 3 (Indoor)", Category: model.CourtIndoor, Price: 50},
			{ID: 4, Name: "Court 4 (Indoor)", Category: model.CourtIndoor, Price: 50},
			{ID: 5, Name: "Court 5 (Outdoor)", Category: model.CourtOutdoor, Price: 40},
			{ID: 6, Name: "Court 6 (Outdoor)", Category: model.CourtOutdoor, Price: 40},
		},
		BarProducts: []model.BarProduct{
			{Name: "Powerade", Price: 2},
			{Name: "Acqua", Price: 1},
			{Name: "Birra", Price: 2.5},
			{Name: "Patatine", Price: 1.5},
			{Name: "Barreta cereali", Price: 1.5},
			{Name: "RedBull", Price: 2.5},
			{Name: "Monster", Price: 3},
			{Name: "Magnesio", Price: 2.5},
			{Name: "Coca Cola", Price: 2},
			{Name: "Pepsi", Price: 2},
			{Name: "Té", Price: 2},
		},
		TubePrice:     6,
		OwnerRate:     10,
		OvergripPrice: 2.5,
		ShareOptions:  []int{1, 2, 3, 4},
	}
}

// LoadPricing reads a pricing table from the given YAML file.  An
// empty path returns the defaults.  The loaded table is validated so
// that a malformed file fails fast at startup instead of producing
// nonsense invoices later.
func LoadPricing(path string) (*Pricing, error) {
	if path == "" {
		return DefaultPricing(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing file: %w", err)
	}
	p := &Pricing{}
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("parse pricing file: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing file %s: %w", path, err)
	}
	return p, nil
}

// validate checks the structural invariants of a loaded table.
func (p *Pricing) validate() error {
	if len(p.Courts) == 0 {
		return fmt.Errorf("no courts defined")
	}
	for _, c := range p.Courts {
		if c.Category != model.CourtIndoor && c.Category != model.CourtOutdoor {
			return fmt.Errorf("court %d: unknown category %q", c.ID, c.Category)
		}
		if c.Price <= 0 {
			return fmt.Errorf("court %d: price must be positive", c.ID)
		}
	}
	for _, b := range p.BarProducts {
		if b.Name == "" || b.Price <= 0 {
			return fmt.Errorf("bar product %q: name and positive price required", b.Name)
		}
	}
	if p.TubePrice <= 0 || p.OwnerRate <= 0 || p.OvergripPrice <= 0 {
		return fmt.Errorf("tube_price, owner_rate and overgrip_price must be positive")
	}
	if len(p.ShareOptions) == 0 {
		return fmt.Errorf("no share options defined")
	}
	for _, s := range p.ShareOptions {
		if s < 1 {
			return fmt.Errorf("share option %d: divisor must be at least 1", s)
		}
	}
	return nil
}

// CourtByID looks up a court in the catalog.
func (p *Pricing) CourtByID(id int) (model.Court, bool) {
	for _, c := range p.Courts {
		if c.ID == id {
			return c, true
		}
	}
	return model.Court{}, false
}

// ProductByName looks up a bar product by its unique name.
func (p *Pricing) ProductByName(name string) (model.BarProduct, bool) {
	for _, b := range p.BarProducts {
		if b.Name == name {
			return b, true
		}
	}
	return model.BarProduct{}, false
}

// ValidShare reports whether the divisor is on the share menu.
func (p *Pricing) ValidShare(n int) bool {
	for _, s := range p.ShareOptions {
		if s == n {
			return true
		}
	}
	return false
}
