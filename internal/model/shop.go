package model

// ShopItemKind тип товара за фишки
type ShopItemKind string

const (
	ItemCosmetic ShopItemKind = "cosmetic"
	ItemBoost    ShopItemKind = "boost"
)

type ShopItem struct {
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	Kind            ShopItemKind `yaml:"kind"`
	PriceChips      int64        `yaml:"price_chips"`
	Multiplier      float64      `yaml:"multiplier"`       // Только для бустов
	DurationMinutes int          `yaml:"duration_minutes"` // Только для бустов
}

type ShopPurchase struct {
	ItemID    string
	Kind      ShopItemKind
	Chips     int64
	ExpiresAt int64 // unix, 0 для косметики
}

type ShopEntry struct {
	Item      ShopItem
	Owned     bool
	ExpiresAt int64
}
