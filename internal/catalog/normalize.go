package catalog

// DefaultMaterial is used when a listing does not declare a material.
const DefaultMaterial = "Unspecified"

// DefaultRating is used when a listing has no reviews yet.
const DefaultRating = 4.5

// Normalize converts one raw listing into its canonical display record.
// Missing optional fields degrade to defaults; it never fails.
func Normalize(raw RawProduct) DisplayProduct {
	material := DefaultMaterial
	if raw.Details != nil && raw.Details.Material != "" {
		material = raw.Details.Material
	}

	rating := raw.AverageRating
	if rating <= 0 {
		rating = DefaultRating
	}

	return DisplayProduct{
		ID:           raw.ID,
		Name:         raw.Name,
		Price:        basePrice(raw.PriceRanges),
		Category:     Classify(material),
		Material:     material,
		Image:        imageFor(raw.Name, material),
		Rating:       rating,
		Availability: raw.Availability,
		Description:  raw.Description,
	}
}

// NormalizeAll maps Normalize over the list, preserving order.
func NormalizeAll(raws []RawProduct) []DisplayProduct {
	out := make([]DisplayProduct, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

// basePrice selects the tier with the smallest initial quantity rather than
// trusting backend array order. Ties keep the first occurrence.
func basePrice(tiers []PriceRange) float64 {
	if len(tiers) == 0 {
		return 0
	}
	best := tiers[0]
	for _, tier := range tiers[1:] {
		if tier.InitialQuantity < best.InitialQuantity {
			best = tier
		}
	}
	return best.PricePerRange
}
