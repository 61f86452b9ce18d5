package economy

import (
	"math"

	"clicker_backend/internal/model"
)

// UpgradeCost цена покупки уровня level+1.
// После SoftCapLevel каждый уровень дорожает дополнительно
func UpgradeCost(cfg model.GameConfig, u model.UpgradeData, level int) float64 {
	if level < 0 {
		level = 0
	}
	cost := u.BaseCost * math.Pow(u.CostMultiplier, float64(level))
	if cfg.SoftCapLevel > 0 && level > cfg.SoftCapLevel {
		cost *= math.Pow(cfg.SoftCapMultiplier, float64(level-cfg.SoftCapLevel))
	}
	return cost
}

// UpgradeEffect величина эффекта на уровне level
func UpgradeEffect(u model.UpgradeData, level int) float64 {
	if level <= 0 {
		if u.EffectType == model.EffectExponential {
			return 1
		}
		return 0
	}
	if u.EffectType == model.EffectExponential {
		return math.Pow(u.EffectPerLevel, float64(level))
	}
	return u.EffectPerLevel * float64(level)
}

// UpgradeBook уровни игрока поверх каталога с кешем суммарных эффектов
type UpgradeBook struct {
	catalog []model.UpgradeData
	levels  map[string]int
	cached  *model.Effects
	owner   *model.PlayerData // запись, в которой хранится кеш между вызовами
}

func NewUpgradeBook(catalog []model.UpgradeData, levels map[string]int) *UpgradeBook {
	if levels == nil {
		levels = map[string]int{}
	}
	return &UpgradeBook{catalog: catalog, levels: levels}
}

func (b *UpgradeBook) Level(id string) int {
	return b.levels[id]
}

// SetLevel меняет уровень и сбрасывает кеш
func (b *UpgradeBook) SetLevel(id string, level int) {
	b.levels[id] = level
	b.setCache(nil)
}

func (b *UpgradeBook) setCache(eff *model.Effects) {
	b.cached = eff
	if b.owner != nil {
		b.owner.SetCachedEffects(eff)
	}
}

// Effects множитель клика перемножается, остальные категории складываются
func (b *UpgradeBook) Effects() model.Effects {
	if b.cached != nil {
		return *b.cached
	}

	eff := model.Effects{ClickMultiplier: 1}
	for _, u := range b.catalog {
		lvl := b.levels[u.ID]
		if lvl <= 0 {
			continue
		}
		v := UpgradeEffect(u, lvl)

		if u.Category == model.CategoryClickPower {
			if u.EffectType == model.EffectExponential {
				eff.ClickMultiplier *= v
			} else {
				eff.ClickMultiplier *= 1 + v
			}
			continue
		}

		if u.EffectType == model.EffectExponential {
			v -= 1
		}
		switch u.Category {
		case model.CategoryCritChance:
			eff.CritChance += v
		case model.CategoryGoldBoost:
			eff.GoldBoost += v
		case model.CategorySlotLuck:
			eff.SlotLuck += v
		case model.CategoryIdleIncome:
			eff.IdleIncome += v
		}
	}

	b.setCache(&eff)
	return eff
}

// book книга поверх уровней записи. Кеш эффектов хранится в самой записи,
// поэтому клик, спин и сбор дохода в одной операции считают эффекты один раз
func (e *Engine) book(data *model.PlayerData) *UpgradeBook {
	if data.UpgradeLevels == nil {
		data.UpgradeLevels = map[string]int{}
	}
	return &UpgradeBook{
		catalog: e.cfg.Upgrades,
		levels:  data.UpgradeLevels,
		cached:  data.CachedEffects(),
		owner:   data,
	}
}

// Effects суммарные эффекты улучшений игрока
func (e *Engine) Effects(data *model.PlayerData) model.Effects {
	return e.book(data).Effects()
}

// Upgrades каталог с уровнями и ценами игрока
func (e *Engine) Upgrades(data *model.PlayerData) []model.UpgradeInfo {
	infos := make([]model.UpgradeInfo, 0, len(e.cfg.Upgrades))
	for _, u := range e.cfg.Upgrades {
		lvl := data.UpgradeLevels[u.ID]
		infos = append(infos, model.UpgradeInfo{
			Upgrade:  u,
			Level:    lvl,
			NextCost: UpgradeCost(e.cfg, u, lvl),
			Effect:   UpgradeEffect(u, lvl),
			Maxed:    u.MaxLevel > 0 && lvl >= u.MaxLevel,
		})
	}
	return infos
}

// BuyUpgrade покупает следующий уровень улучшения
func (e *Engine) BuyUpgrade(data *model.PlayerData, id string) (model.UpgradeResult, error) {
	u, ok := e.cfg.Upgrade(id)
	if !ok {
		return model.UpgradeResult{}, model.ErrUnknownUpgrade
	}

	book := e.book(data)
	lvl := book.Level(id)
	if u.MaxLevel > 0 && lvl >= u.MaxLevel {
		return model.UpgradeResult{}, model.ErrMaxLevel
	}

	// доход офлайн до покупки считается по старой ставке
	if u.Category == model.CategoryIdleIncome || u.Category == model.CategoryGoldBoost {
		e.CollectIdle(data)
	}

	cost := UpgradeCost(e.cfg, u, lvl)
	if err := SpendGold(data, cost); err != nil {
		return model.UpgradeResult{}, err
	}

	book.SetLevel(id, lvl+1)
	TrackQuest(data, model.QuestUpgrades, 1)

	return model.UpgradeResult{
		ID:       id,
		Level:    lvl + 1,
		Cost:     cost,
		NextCost: UpgradeCost(e.cfg, u, lvl+1),
		Gold:     data.Gold,
		Effects:  book.Effects(),
	}, nil
}
