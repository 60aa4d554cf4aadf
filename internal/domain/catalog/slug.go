package catalog

import "strings"

// Slugify は商品名からURL用スラッグを作る。
// 同じ名前からは必ず同じスラッグになる（小文字化・空白はハイフン）。
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		default:
			// 記号は落とす
		}
	}

	return strings.TrimRight(b.String(), "-")
}
