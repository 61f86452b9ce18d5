package model

import (
	"fmt"
	"math"
	"strings"
)

// MaxLoginStreak длина таблицы множителей ежедневного входа
const MaxLoginStreak = 7

// SlotOutcomeConfig строка таблицы вероятностей слота
type SlotOutcomeConfig struct {
	Outcome    SlotOutcome `yaml:"outcome"`
	Weight     float64     `yaml:"weight"`
	Multiplier float64     `yaml:"multiplier"`
	Symbol     string      `yaml:"symbol"` // Символ на барабанах для выигрышных категорий
	Lucky      bool        `yaml:"lucky"`  // Вес растёт от улучшения удачи
}

// GameConfig статические настройки экономики. Не меняется после загрузки
type GameConfig struct {
	StartingGold float64 `yaml:"starting_gold"`

	// Клик
	BaseClickPower    float64 `yaml:"base_click_power"`
	BaseCritChance    float64 `yaml:"base_crit_chance"`
	MaxCritChance     float64 `yaml:"max_crit_chance"`
	CritMultiplier    float64 `yaml:"crit_multiplier"`
	MaxTapsPerRequest int     `yaml:"max_taps_per_request"`

	// Слот
	MinBet       float64             `yaml:"min_bet"`
	MaxBet       float64             `yaml:"max_bet"`
	SlotSymbols  []string            `yaml:"slot_symbols"`
	SlotOutcomes []SlotOutcomeConfig `yaml:"slot_outcomes"`

	// Улучшения
	SoftCapLevel      int           `yaml:"soft_cap_level"`
	SoftCapMultiplier float64       `yaml:"soft_cap_multiplier"`
	Upgrades          []UpgradeData `yaml:"upgrades"`

	// Престиж
	PrestigeResetGold    float64 `yaml:"prestige_reset_gold"`
	PrestigeBonusPerChip float64 `yaml:"prestige_bonus_per_chip"`

	// Ежедневные награды
	TimeZone            string          `yaml:"time_zone"`
	DailyLoginBaseGold  float64         `yaml:"daily_login_base_gold"`
	LoginMultipliers    []float64       `yaml:"login_multipliers"`
	DailyLoginDay7Chips int64           `yaml:"daily_login_day7_chips"`
	DailyQuestCount     int             `yaml:"daily_quest_count"`
	QuestTemplates      []QuestTemplate `yaml:"quest_templates"`

	// Оффлайн доход
	MaxOfflineHours float64 `yaml:"max_offline_hours"`

	ShopItems []ShopItem `yaml:"shop_items"`
}

// DefaultGameConfig значения по умолчанию, поверх которых читается YAML
func DefaultGameConfig() GameConfig {
	return GameConfig{
		StartingGold:      100,
		BaseClickPower:    1,
		BaseCritChance:    0.05,
		MaxCritChance:     0.5,
		CritMultiplier:    2,
		MaxTapsPerRequest: 100,

		MinBet:      10,
		MaxBet:      1_000_000,
		SlotSymbols: []string{"cherry", "lemon", "bell", "bar", "seven", "diamond"},
		// RTP таблицы без удачи около 93.7%, удача и бусты поднимают его выше 100%
		SlotOutcomes: []SlotOutcomeConfig{
			{Outcome: OutcomeLoss, Weight: 1200, Multiplier: 0},
			{Outcome: OutcomeDraw, Weight: 400, Multiplier: 1},
			{Outcome: OutcomeMini, Weight: 240, Multiplier: 1.5, Symbol: "cherry", Lucky: true},
			{Outcome: OutcomeSmall, Weight: 100, Multiplier: 3, Symbol: "lemon", Lucky: true},
			{Outcome: OutcomeBig, Weight: 40, Multiplier: 10, Symbol: "bell", Lucky: true},
			{Outcome: OutcomeJackpot, Weight: 4, Multiplier: 50, Symbol: "seven", Lucky: true},
			{Outcome: OutcomeMegaJackpot, Weight: 1, Multiplier: 200, Symbol: "diamond", Lucky: true},
		},

		SoftCapLevel:      100,
		SoftCapMultiplier: 1.05,
		Upgrades: []UpgradeData{
			{ID: "sharp_finger", Name: "Sharp Finger", Category: CategoryClickPower, BaseCost: 25, CostMultiplier: 1.15, EffectType: EffectExponential, EffectPerLevel: 1.12},
			{ID: "lucky_tap", Name: "Lucky Tap", Category: CategoryCritChance, BaseCost: 100, CostMultiplier: 1.25, EffectType: EffectLinear, EffectPerLevel: 0.01, MaxLevel: 45},
			{ID: "golden_touch", Name: "Golden Touch", Category: CategoryGoldBoost, BaseCost: 500, CostMultiplier: 1.3, EffectType: EffectLinear, EffectPerLevel: 0.05},
			{ID: "four_leaf", Name: "Four Leaf Clover", Category: CategorySlotLuck, BaseCost: 250, CostMultiplier: 1.35, EffectType: EffectLinear, EffectPerLevel: 0.02, MaxLevel: 50},
			{ID: "money_tree", Name: "Money Tree", Category: CategoryIdleIncome, BaseCost: 150, CostMultiplier: 1.2, EffectType: EffectLinear, EffectPerLevel: 0.5},
		},

		PrestigeResetGold:    100,
		PrestigeBonusPerChip: 0.1,

		TimeZone:            "UTC",
		DailyLoginBaseGold:  100,
		LoginMultipliers:    []float64{1, 1.5, 2, 2.5, 3, 4, 5},
		DailyLoginDay7Chips: 1,
		DailyQuestCount:     3,
		QuestTemplates: []QuestTemplate{
			{ID: "tap_200", Title: "Tap 200 times", Kind: QuestClicks, Target: 200, RewardGold: 250},
			{ID: "tap_1000", Title: "Tap 1000 times", Kind: QuestClicks, Target: 1000, RewardGold: 1000},
			{ID: "spin_20", Title: "Spin the slot 20 times", Kind: QuestSpins, Target: 20, RewardGold: 300},
			{ID: "earn_5k", Title: "Earn 5000 gold", Kind: QuestEarnGold, Target: 5000, RewardGold: 500},
			{ID: "upgrade_3", Title: "Buy 3 upgrades", Kind: QuestUpgrades, Target: 3, RewardGold: 400},
			{ID: "win_5", Title: "Win 5 spins", Kind: QuestSlotWins, Target: 5, RewardGold: 300, RewardChips: 1},
		},

		MaxOfflineHours: 8,

		ShopItems: []ShopItem{
			{ID: "gold_rush", Name: "Gold Rush", Kind: ItemBoost, PriceChips: 2, Multiplier: 2, DurationMinutes: 30},
			{ID: "midas_hour", Name: "Midas Hour", Kind: ItemBoost, PriceChips: 5, Multiplier: 3, DurationMinutes: 60},
			{ID: "neon_reels", Name: "Neon Reels", Kind: ItemCosmetic, PriceChips: 3},
			{ID: "golden_cursor", Name: "Golden Cursor", Kind: ItemCosmetic, PriceChips: 4},
		},
	}
}

// Validate проверяет семантику конфига и собирает все ошибки разом
func (c GameConfig) Validate() error {
	var errs []string

	positive := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, name+" must be > 0")
		}
	}
	positive("base_click_power", c.BaseClickPower)
	positive("crit_multiplier", c.CritMultiplier)
	positive("min_bet", c.MinBet)

	if c.StartingGold < 0 {
		errs = append(errs, "starting_gold must be >= 0")
	}
	if c.BaseCritChance < 0 || c.BaseCritChance > 1 {
		errs = append(errs, "base_crit_chance must be in [0,1]")
	}
	if c.MaxCritChance < 0 || c.MaxCritChance > 1 {
		errs = append(errs, "max_crit_chance must be in [0,1]")
	}
	if c.MaxTapsPerRequest <= 0 {
		errs = append(errs, "max_taps_per_request must be >= 1")
	}
	if c.MaxBet < c.MinBet {
		errs = append(errs, "max_bet must be >= min_bet")
	}
	if c.SoftCapMultiplier < 1 {
		errs = append(errs, "soft_cap_multiplier must be >= 1")
	}
	if c.SoftCapLevel < 0 {
		errs = append(errs, "soft_cap_level must be >= 0")
	}
	if c.PrestigeResetGold < 0 {
		errs = append(errs, "prestige_reset_gold must be >= 0")
	}
	if c.PrestigeBonusPerChip < 0 {
		errs = append(errs, "prestige_bonus_per_chip must be >= 0")
	}
	if c.MaxOfflineHours < 0 {
		errs = append(errs, "max_offline_hours must be >= 0")
	}

	// слот
	if len(c.SlotSymbols) < 3 {
		errs = append(errs, "slot_symbols needs at least 3 symbols")
	}
	var totalWeight float64
	seenOutcome := map[SlotOutcome]bool{}
	for i, o := range c.SlotOutcomes {
		if o.Outcome == "" {
			errs = append(errs, fmt.Sprintf("slot_outcomes[%d].outcome is empty", i))
		}
		if seenOutcome[o.Outcome] {
			errs = append(errs, fmt.Sprintf("slot_outcomes[%d].outcome %q is duplicated", i, o.Outcome))
		}
		seenOutcome[o.Outcome] = true
		if o.Weight < 0 {
			errs = append(errs, fmt.Sprintf("slot_outcomes[%d].weight must be >= 0", i))
		}
		if o.Multiplier < 0 {
			errs = append(errs, fmt.Sprintf("slot_outcomes[%d].multiplier must be >= 0", i))
		}
		if o.Symbol != "" && !contains(c.SlotSymbols, o.Symbol) {
			errs = append(errs, fmt.Sprintf("slot_outcomes[%d].symbol %q is not in slot_symbols", i, o.Symbol))
		}
		totalWeight += o.Weight
	}
	if !(totalWeight > 0) {
		errs = append(errs, "slot_outcomes total weight must be > 0")
	}

	// улучшения
	seenUpgrade := map[string]bool{}
	for i, u := range c.Upgrades {
		if u.ID == "" || seenUpgrade[u.ID] {
			errs = append(errs, fmt.Sprintf("upgrades[%d].id must be unique and non-empty", i))
		}
		seenUpgrade[u.ID] = true
		if u.BaseCost <= 0 {
			errs = append(errs, fmt.Sprintf("upgrades[%d].base_cost must be > 0", i))
		}
		if u.CostMultiplier < 1 {
			errs = append(errs, fmt.Sprintf("upgrades[%d].cost_multiplier must be >= 1", i))
		}
		switch u.EffectType {
		case EffectLinear:
		case EffectExponential:
			if u.EffectPerLevel <= 0 {
				errs = append(errs, fmt.Sprintf("upgrades[%d].effect_per_level must be > 0 for exponential", i))
			}
		default:
			errs = append(errs, fmt.Sprintf("upgrades[%d].effect_type must be linear or exponential", i))
		}
		switch u.Category {
		case CategoryClickPower, CategoryCritChance, CategoryGoldBoost, CategorySlotLuck, CategoryIdleIncome:
		default:
			errs = append(errs, fmt.Sprintf("upgrades[%d].category %q is unknown", i, u.Category))
		}
		if u.MaxLevel < 0 {
			errs = append(errs, fmt.Sprintf("upgrades[%d].max_level must be >= 0", i))
		}
	}

	// ежедневное
	if len(c.LoginMultipliers) != MaxLoginStreak {
		errs = append(errs, fmt.Sprintf("login_multipliers must have exactly %d entries", MaxLoginStreak))
	}
	if c.DailyQuestCount < 0 || c.DailyQuestCount > len(c.QuestTemplates) {
		errs = append(errs, "daily_quest_count must be in [0, len(quest_templates)]")
	}
	seenQuest := map[string]bool{}
	for i, q := range c.QuestTemplates {
		if q.ID == "" || seenQuest[q.ID] {
			errs = append(errs, fmt.Sprintf("quest_templates[%d].id must be unique and non-empty", i))
		}
		seenQuest[q.ID] = true
		if q.Target <= 0 {
			errs = append(errs, fmt.Sprintf("quest_templates[%d].target must be > 0", i))
		}
	}

	// магазин
	seenItem := map[string]bool{}
	for i, it := range c.ShopItems {
		if it.ID == "" || seenItem[it.ID] {
			errs = append(errs, fmt.Sprintf("shop_items[%d].id must be unique and non-empty", i))
		}
		seenItem[it.ID] = true
		if it.PriceChips <= 0 {
			errs = append(errs, fmt.Sprintf("shop_items[%d].price_chips must be > 0", i))
		}
		switch it.Kind {
		case ItemCosmetic:
		case ItemBoost:
			if it.Multiplier < 1 || it.DurationMinutes <= 0 {
				errs = append(errs, fmt.Sprintf("shop_items[%d] boost needs multiplier >= 1 and duration > 0", i))
			}
		default:
			errs = append(errs, fmt.Sprintf("shop_items[%d].kind must be cosmetic or boost", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("game config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Upgrade ищет улучшение по ID
func (c GameConfig) Upgrade(id string) (UpgradeData, bool) {
	for _, u := range c.Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return UpgradeData{}, false
}

// ShopItem ищет товар по ID
func (c GameConfig) ShopItem(id string) (ShopItem, bool) {
	for _, it := range c.ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
