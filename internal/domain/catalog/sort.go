package catalog

import (
	"sort"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

// display_order未設定の行は最後に回す
const missingDisplayOrder int64 = 999

func displayOrderOf(p model.ProductWithInventory) int64 {
	if p.DisplayOrder == nil {
		return missingDisplayOrder
	}
	return *p.DisplayOrder
}

// SortByDisplayOrder はストアの並び順の上に、販売側の並び順を重ねる。
// display_order昇順 → 同点なら computed_status=active が先 → それ以外は元の順を保つ。
func SortByDisplayOrder(items []model.ProductWithInventory) {
	sort.SliceStable(items, func(i, j int) bool {
		oi, oj := displayOrderOf(items[i]), displayOrderOf(items[j])
		if oi != oj {
			return oi < oj
		}

		ai := items[i].ComputedStatus == model.ProductStatusActive
		aj := items[j].ComputedStatus == model.ProductStatusActive
		return ai && !aj
	})
}
