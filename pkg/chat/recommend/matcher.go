package recommend

import (
	"strings"

	"ai-tireshop-be/internal/entity"
)

// FromReply picks out which candidate products the assistant's reply actually
// mentioned, by substring-matching the reply against each product's size and
// vendor. This is a heuristic over free text, not a structured citation from
// the provider, so a vendor name that happens to appear in prose counts.
func FromReply(reply string, candidates []*entity.Product) []*entity.Product {
	if reply == "" || len(candidates) == 0 {
		return nil
	}

	lower := strings.ToLower(reply)

	var matched []*entity.Product
	for _, p := range candidates {
		size := strings.ToLower(p.Size)
		vendor := strings.ToLower(p.Vendor)
		if (size != "" && strings.Contains(lower, size)) ||
			(vendor != "" && strings.Contains(lower, vendor)) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Ids projects the matched products to their identifier strings for storage
// on the conversation row.
func Ids(products []*entity.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.Id.String()
	}
	return ids
}
