package catalog

import (
	"fmt"
	"os"
	"strings"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"gopkg.in/yaml.v3"
)

// DefaultProducts returns the rows written into an empty catalog.
func DefaultProducts() []v1.NewProduct {
	return []v1.NewProduct{
		{
			Name:     "Hydrating Face Serum",
			Category: v1.CategoryBeauty,
			ImageURL: "https://images.unsplash.com/photo-1620916566398-39f1143ab7be",
			LinkURL:  "https://www.amazon.com/s?k=hydrating+face+serum",
		},
		{
			Name:     "Mineral Sunscreen SPF 50",
			Category: v1.CategoryBeauty,
			ImageURL: "https://images.unsplash.com/photo-1556228578-8c89e6adf883",
			LinkURL:  "https://www.amazon.com/s?k=mineral+sunscreen+spf+50",
		},
		{
			Name:     "Omega-3 Fish Oil",
			Category: v1.CategorySupplement,
			ImageURL: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae",
			LinkURL:  "https://www.amazon.com/s?k=omega+3+fish+oil",
		},
		{
			Name:     "Vitamin D3 + K2",
			Category: v1.CategorySupplement,
			ImageURL: "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2",
			LinkURL:  "https://www.amazon.com/s?k=vitamin+d3+k2",
		},
	}
}

type seedFile struct {
	Products []v1.NewProduct `yaml:"products"`
}

// LoadSeedFile reads seed rows from a YAML file of the form:
//
//	products:
//	  - name: "Serum"
//	    category: beauty
//	    image_url: "https://..."
//	    link_url: "https://..."
//
// An empty path returns DefaultProducts.
func LoadSeedFile(path string) ([]v1.NewProduct, error) {
	if path == "" {
		return DefaultProducts(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var parsed seedFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %q: %w", path, err)
	}
	if len(parsed.Products) == 0 {
		return nil, fmt.Errorf("seed file %q contains no products", path)
	}

	for i, p := range parsed.Products {
		if strings.TrimSpace(p.Name) == "" || p.ImageURL == "" || p.LinkURL == "" {
			return nil, fmt.Errorf("seed file %q: product %d is missing name, image_url or link_url", path, i)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("seed file %q: product %d has unknown category %q", path, i, p.Category)
		}
	}

	return parsed.Products, nil
}
