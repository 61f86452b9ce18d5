package model

// SaveVersion версия формата сохранения
const SaveVersion = "1"

// PlayerData - единственная изменяемая запись игрока.
// Сериализуется целиком в один JSON документ
type PlayerData struct {
	Version         string           `json:"version"`
	Gold            float64          `json:"gold"`
	Chips           int64            `json:"chips"`
	TotalClicks     int64            `json:"total_clicks"`
	TotalSpins      int64            `json:"total_spins"`
	TotalGoldEarned float64          `json:"total_gold_earned"`
	PrestigeCount   int              `json:"prestige_count"`
	PrestigeChips   int64            `json:"prestige_chips"`  // Фишки, выданные за все престижи
	OwnedItems      []string         `json:"owned_items"`     // Купленная косметика
	ActiveBoosts    map[string]int64 `json:"active_boosts"`   // ID буста -> unix время окончания
	UpgradeLevels   map[string]int   `json:"upgrade_levels"`  // ID улучшения -> уровень
	LastLoginDate   string           `json:"last_login_date"` // YYYY-MM-DD
	LoginStreak     int              `json:"login_streak"`
	QuestDate       string           `json:"quest_date"` // YYYY-MM-DD
	DailyQuests     []DailyQuest     `json:"daily_quests"`
	LastSeenAt      int64            `json:"last_seen_at"` // unix, для оффлайн дохода
	CurrentBet      float64          `json:"current_bet"`

	effects *Effects // суммарные эффекты улучшений, живут до смены уровней
}

// NewPlayerData создаёт запись по умолчанию
func NewPlayerData(startGold, bet float64) *PlayerData {
	return &PlayerData{
		Version:       SaveVersion,
		Gold:          startGold,
		OwnedItems:    []string{},
		ActiveBoosts:  map[string]int64{},
		UpgradeLevels: map[string]int{},
		DailyQuests:   []DailyQuest{},
		CurrentBet:    bet,
	}
}

// Normalize чинит nil-мапы и отрицательные счётчики после загрузки
func (p *PlayerData) Normalize() {
	if p.Version == "" {
		p.Version = SaveVersion
	}
	if p.OwnedItems == nil {
		p.OwnedItems = []string{}
	}
	if p.ActiveBoosts == nil {
		p.ActiveBoosts = map[string]int64{}
	}
	if p.UpgradeLevels == nil {
		p.UpgradeLevels = map[string]int{}
	}
	if p.DailyQuests == nil {
		p.DailyQuests = []DailyQuest{}
	}
	p.effects = nil
	for id, lvl := range p.UpgradeLevels {
		if lvl < 0 {
			p.UpgradeLevels[id] = 0
		}
	}
	if p.Gold < 0 {
		p.Gold = 0
	}
	if p.Chips < 0 {
		p.Chips = 0
	}
	if p.LoginStreak < 0 {
		p.LoginStreak = 0
	}
}

// Owns проверяет наличие косметики
func (p *PlayerData) Owns(itemID string) bool {
	for _, id := range p.OwnedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// CachedEffects эффекты, посчитанные в рамках текущей операции, или nil
func (p *PlayerData) CachedEffects() *Effects {
	return p.effects
}

func (p *PlayerData) SetCachedEffects(eff *Effects) {
	p.effects = eff
}
