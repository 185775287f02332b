package memory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type seedProduct struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
	Image       string  `yaml:"image"`
}

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

// LoadSeed reads a catalog seed file. Callers fall back to DefaultProducts
// when the file is missing or malformed.
func LoadSeed(path string) ([]domain.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sf seedFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parse catalog seed %s: %w", path, err)
	}
	if len(sf.Products) == 0 {
		return nil, fmt.Errorf("catalog seed %s contains no products", path)
	}

	products := make([]domain.Product, 0, len(sf.Products))
	for i, sp := range sf.Products {
		if sp.ID <= 0 {
			return nil, fmt.Errorf("catalog seed %s: product %d has invalid id %d", path, i, sp.ID)
		}
		if sp.Price < 0 {
			return nil, fmt.Errorf("catalog seed %s: product %d has negative price", path, i)
		}
		products = append(products, domain.Product{
			ID:          sp.ID,
			Name:        sp.Name,
			Price:       sp.Price,
			Description: sp.Description,
			Image:       sp.Image,
		})
	}
	return products, nil
}

func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Modern Wireless Headphones",
			Price:       150.00,
			Description: "High-fidelity over-ear wireless headphones",
			Image:       "https://images.unsplash.com/photo-1518449074331-5eacb3db855a?auto=format&fit=crop&w=400&q=80",
		},
		{
			ID:          2,
			Name:        "Smart Fitness Watch",
			Price:       200.00,
			Description: "Track your health and workouts seamlessly",
			Image:       "https://images.unsplash.com/photo-1598970434795-0c54fe7c0649?auto=format&fit=crop&w=400&q=80",
		},
		{
			ID:          3,
			Name:        "Leather Laptop Bag",
			Price:       85.00,
			Description: "Stylish and durable carry-all for your laptop",
			Image:       "https://images.unsplash.com/photo-1513116476489-7635e79feb27?auto=format&fit=crop&w=400&q=80",
		},
	}
}
