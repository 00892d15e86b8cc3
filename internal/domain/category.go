package domain

// Category is the closed set of item categories.
type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryElectronics Category = "electronics"
	CategoryBooks       Category = "books"
	CategoryShoes       Category = "shoes"
	CategoryWatches     Category = "watches"
	CategoryAccessories Category = "accessories"
	CategoryFurniture   Category = "furniture"
	CategorySports      Category = "sports"
	CategoryMusic       Category = "music"
	CategoryOther       Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryClothing, CategoryElectronics, CategoryBooks, CategoryShoes,
		CategoryWatches, CategoryAccessories, CategoryFurniture, CategorySports,
		CategoryMusic, CategoryOther:
		return true
	}
	return false
}

// CategoryInfo is the display metadata for a category.
type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
	Color string   `json:"color"`
}

// Categories is the fixed, total category table. The "other" entry is last
// and doubles as the fallback for unknown values.
var Categories = [...]CategoryInfo{
	{ID: CategoryClothing, Label: "Clothing", Icon: "👕", Color: "#E94560"},
	{ID: CategoryElectronics, Label: "Electronics", Icon: "💻", Color: "#7B2FF7"},
	{ID: CategoryBooks, Label: "Books", Icon: "📚", Color: "#3B82F6"},
	{ID: CategoryShoes, Label: "Shoes", Icon: "👟", Color: "#00D4AA"},
	{ID: CategoryWatches, Label: "Watches", Icon: "⌚", Color: "#FFB830"},
	{ID: CategoryAccessories, Label: "Accessories", Icon: "🎒", Color: "#FF6B6B"},
	{ID: CategoryFurniture, Label: "Furniture", Icon: "🪑", Color: "#4ECDC4"},
	{ID: CategorySports, Label: "Sports", Icon: "⚽", Color: "#45B7D1"},
	{ID: CategoryMusic, Label: "Music", Icon: "🎸", Color: "#FF8A65"},
	{ID: CategoryOther, Label: "Other", Icon: "📦", Color: "#9CA3AF"},
}
