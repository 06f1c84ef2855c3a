// Package catalog builds the products a store starts with from a YAML file.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rl1809/storefront/internal/core/domain"
)

//go:embed default.yaml
var defaultCatalog []byte

type File struct {
	Promotions []PromotionSpec `yaml:"promotions"`
	Products   []ProductSpec   `yaml:"products"`
}

type PromotionSpec struct {
	Name    string               `yaml:"name"`
	Kind    domain.PromotionKind `yaml:"kind"`
	Percent decimal.Decimal      `yaml:"percent"`
}

// ProductSpec describes one product. Kind defaults to standard; Maximum is
// only read for limited products and Quantity is ignored for non-stocked ones.
type ProductSpec struct {
	Name      string             `yaml:"name"`
	Kind      domain.ProductKind `yaml:"kind"`
	Price     decimal.Decimal    `yaml:"price"`
	Quantity  int                `yaml:"quantity"`
	Maximum   int                `yaml:"maximum"`
	Promotion string             `yaml:"promotion"`
}

// Default returns the products of the built-in catalog.
func Default() ([]domain.Purchasable, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, falling back to the built-in catalog when path
// is empty.
func Load(path string) ([]domain.Purchasable, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]domain.Purchasable, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return file.Build()
}

// Build creates the promotions and then the products that reference them.
// Products sharing a promotion name share the same instance.
func (f File) Build() ([]domain.Purchasable, error) {
	promotions := make(map[string]domain.Promotion, len(f.Promotions))
	for _, spec := range f.Promotions {
		if _, exists := promotions[spec.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate promotion %q", domain.ErrPromotion, spec.Name)
		}
		promo, err := domain.NewPromotion(spec.Kind, spec.Name, spec.Percent)
		if err != nil {
			return nil, fmt.Errorf("promotion %q: %w", spec.Name, err)
		}
		promotions[spec.Name] = promo
	}

	products := make([]domain.Purchasable, 0, len(f.Products))
	for _, spec := range f.Products {
		p, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", spec.Name, err)
		}
		if spec.Promotion != "" {
			promo, ok := promotions[spec.Promotion]
			if !ok {
				return nil, fmt.Errorf("product %q: %w: unknown promotion %q",
					spec.Name, domain.ErrPromotion, spec.Promotion)
			}
			p.SetPromotion(promo)
		}
		products = append(products, p)
	}
	return products, nil
}

// build returns an untyped nil on failure so callers can compare against nil.
func (s ProductSpec) build() (domain.Purchasable, error) {
	switch s.Kind {
	case "", domain.KindStandard:
		p, err := domain.NewProduct(s.Name, s.Price, s.Quantity)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.KindNonStocked:
		p, err := domain.NewNonStockedProduct(s.Name, s.Price)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.KindLimited:
		p, err := domain.NewLimitedProduct(s.Name, s.Price, s.Quantity, s.Maximum)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, domain.ValidationErrorf("unknown product kind %q", s.Kind)
	}
}
