package economy

import "clicker_backend/internal/model"

// Shop каталог с отметками владения
func (e *Engine) Shop(data *model.PlayerData) []model.ShopEntry {
	now := e.clock.Now().Unix()
	entries := make([]model.ShopEntry, 0, len(e.cfg.ShopItems))
	for _, it := range e.cfg.ShopItems {
		entry := model.ShopEntry{Item: it}
		switch it.Kind {
		case model.ItemCosmetic:
			entry.Owned = data.Owns(it.ID)
		case model.ItemBoost:
			if exp := data.ActiveBoosts[it.ID]; exp > now {
				entry.Owned = true
				entry.ExpiresAt = exp
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// BuyItem покупка за фишки. Повторная покупка буста продлевает его
func (e *Engine) BuyItem(data *model.PlayerData, itemID string) (model.ShopPurchase, error) {
	it, ok := e.cfg.ShopItem(itemID)
	if !ok {
		return model.ShopPurchase{}, model.ErrUnknownItem
	}
	if it.Kind == model.ItemCosmetic && data.Owns(it.ID) {
		return model.ShopPurchase{}, model.ErrAlreadyOwned
	}
	if data.Chips < it.PriceChips {
		return model.ShopPurchase{}, model.ErrInsufficientChips
	}

	// буст меняет ставку дохода офлайн, накопленное до покупки начисляется по старой
	if it.Kind == model.ItemBoost {
		e.CollectIdle(data)
	}

	data.Chips -= it.PriceChips
	purchase := model.ShopPurchase{ItemID: it.ID, Kind: it.Kind, Chips: data.Chips}

	switch it.Kind {
	case model.ItemCosmetic:
		data.OwnedItems = append(data.OwnedItems, it.ID)
	case model.ItemBoost:
		start := max(e.clock.Now().Unix(), data.ActiveBoosts[it.ID])
		exp := start + int64(it.DurationMinutes)*60
		data.ActiveBoosts[it.ID] = exp
		purchase.ExpiresAt = exp
	}
	return purchase, nil
}

// GoldBoost множитель золота от улучшений и активных бустов
func (e *Engine) GoldBoost(data *model.PlayerData) float64 {
	return e.goldBoost(data, e.Effects(data))
}

func (e *Engine) goldBoost(data *model.PlayerData, eff model.Effects) float64 {
	boost := 1 + eff.GoldBoost
	now := e.clock.Now().Unix()
	for id, exp := range data.ActiveBoosts {
		if exp <= now {
			continue
		}
		if it, ok := e.cfg.ShopItem(id); ok && it.Kind == model.ItemBoost {
			boost *= it.Multiplier
		}
	}
	return boost
}

func (e *Engine) pruneBoosts(data *model.PlayerData) {
	now := e.clock.Now().Unix()
	for id, exp := range data.ActiveBoosts {
		if exp <= now {
			delete(data.ActiveBoosts, id)
		}
	}
}
