package seo

import (
	"fmt"
	"strings"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

// ProductJSONLD はschema.orgのProduct構造化データを作る。
// availabilityは計算済みステータスから決める。
func ProductJSONLD(baseURL string, p model.ProductWithInventory) map[string]interface{} {
	base := strings.TrimRight(baseURL, "/")

	availability := "https://schema.org/OutOfStock"
	if p.ComputedStatus == model.ProductStatusActive {
		availability = "https://schema.org/InStock"
	}

	offer := map[string]interface{}{
		"@type":         "Offer",
		"url":           fmt.Sprintf("%s/products/%s", base, p.Slug),
		"price":         centsToDecimal(p.Price),
		"priceCurrency": "USD",
		"availability":  availability,
	}

	ld := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Product",
		"name":        p.Name,
		"description": p.Description,
		"offers":      offer,
	}

	if p.Image != "" {
		ld["image"] = p.Image
	}
	if p.Category != "" {
		ld["category"] = p.Category
	}

	return ld
}

// セント整数を "199.00" 形式にする
func centsToDecimal(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
