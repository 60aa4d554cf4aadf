package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

func TestProductJSONLD(t *testing.T) {
	p := model.ProductWithInventory{
		Product: model.Product{
			Name:        "Cold Plunge Pro",
			Slug:        "cold-plunge-pro",
			Description: "Full size cold plunge",
			Price:       99900,
			Image:       "https://cdn.example.com/p.jpg",
			Category:    "tubs",
		},
		ComputedStatus: model.ProductStatusActive,
	}

	ld := ProductJSONLD("https://shop.example.com", p)

	assert.Equal(t, "https://schema.org", ld["@context"])
	assert.Equal(t, "Product", ld["@type"])
	assert.Equal(t, "Cold Plunge Pro", ld["name"])

	offer, ok := ld["offers"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "999.00", offer["price"])
	assert.Equal(t, "USD", offer["priceCurrency"])
	assert.Equal(t, "https://schema.org/InStock", offer["availability"])
	assert.Equal(t, "https://shop.example.com/products/cold-plunge-pro", offer["url"])
}

func TestProductJSONLD_OutOfStock(t *testing.T) {
	p := model.ProductWithInventory{
		Product:        model.Product{Name: "Barrel", Slug: "barrel", Price: 50050},
		ComputedStatus: model.ProductStatusOutOfStock,
	}

	ld := ProductJSONLD("https://shop.example.com", p)

	offer := ld["offers"].(map[string]interface{})
	assert.Equal(t, "https://schema.org/OutOfStock", offer["availability"])
	assert.Equal(t, "500.50", offer["price"])
}
