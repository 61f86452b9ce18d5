package model

// UpgradeCategory группа эффектов, по которой суммируются улучшения
type UpgradeCategory string

const (
	CategoryClickPower UpgradeCategory = "click_power"
	CategoryCritChance UpgradeCategory = "crit_chance"
	CategoryGoldBoost  UpgradeCategory = "gold_boost"
	CategorySlotLuck   UpgradeCategory = "slot_luck"
	CategoryIdleIncome UpgradeCategory = "idle_income"
)

// EffectType способ роста эффекта
type EffectType string

const (
	EffectLinear      EffectType = "linear"
	EffectExponential EffectType = "exponential"
)

// UpgradeData описание улучшения из каталога
type UpgradeData struct {
	ID             string          `yaml:"id"`
	Name           string          `yaml:"name"`
	Category       UpgradeCategory `yaml:"category"`
	BaseCost       float64         `yaml:"base_cost"`
	CostMultiplier float64         `yaml:"cost_multiplier"`
	EffectType     EffectType      `yaml:"effect_type"`
	EffectPerLevel float64         `yaml:"effect_per_level"`
	MaxLevel       int             `yaml:"max_level"` // 0 - без ограничения
}

// Effects суммарные эффекты улучшений по категориям
type Effects struct {
	ClickMultiplier float64 // Произведение экспоненциальных эффектов, 1 без улучшений
	CritChance      float64
	GoldBoost       float64
	SlotLuck        float64
	IdleIncome      float64 // Золото в секунду
}

// UpgradeInfo состояние улучшения для конкретного игрока
type UpgradeInfo struct {
	Upgrade  UpgradeData
	Level    int
	NextCost float64
	Effect   float64
	Maxed    bool
}

type UpgradeResult struct {
	ID       string
	Level    int
	Cost     float64
	NextCost float64
	Gold     float64
	Effects  Effects
}
