package converter

import (
	"clicker_backend/internal/api/dto/shop"
	"clicker_backend/internal/model"
)

func ToShopItems(entries []model.ShopEntry) []shop.Item {
	result := make([]shop.Item, len(entries))
	for i, e := range entries {
		result[i] = shop.Item{
			ID:              e.Item.ID,
			Name:            e.Item.Name,
			Kind:            string(e.Item.Kind),
			PriceChips:      e.Item.PriceChips,
			Multiplier:      e.Item.Multiplier,
			DurationMinutes: e.Item.DurationMinutes,
			Owned:           e.Owned,
			ExpiresAt:       e.ExpiresAt,
		}
	}
	return result
}

func ToShopBuyResponse(res model.ShopPurchase) shop.BuyResponse {
	return shop.BuyResponse{
		ItemID:    res.ItemID,
		Kind:      string(res.Kind),
		Chips:     res.Chips,
		ExpiresAt: res.ExpiresAt,
	}
}
