package model

// QuestKind счётчик, который двигает квест
type QuestKind string

const (
	QuestClicks   QuestKind = "clicks"
	QuestSpins    QuestKind = "spins"
	QuestEarnGold QuestKind = "earn_gold"
	QuestUpgrades QuestKind = "upgrades"
	QuestSlotWins QuestKind = "slot_wins"
)

// QuestTemplate шаблон ежедневного квеста из конфига
type QuestTemplate struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Kind        QuestKind `yaml:"kind"`
	Target      float64   `yaml:"target"`
	RewardGold  float64   `yaml:"reward_gold"`
	RewardChips int64     `yaml:"reward_chips"`
}

// DailyQuest квест игрока на конкретный день
type DailyQuest struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        QuestKind `json:"kind"`
	Target      float64   `json:"target"`
	Progress    float64   `json:"progress"`
	RewardGold  float64   `json:"reward_gold"`
	RewardChips int64     `json:"reward_chips"`
	Claimed     bool      `json:"claimed"`
}

// Complete достигнута ли цель
func (q DailyQuest) Complete() bool {
	return q.Progress >= q.Target
}

// DailyLoginReward награда за ежедневный вход
type DailyLoginReward struct {
	Date       string
	Streak     int
	Multiplier float64
	Gold       float64
	Chips      int64
	Balance    float64
}

type QuestClaim struct {
	QuestID     string
	RewardGold  float64
	RewardChips int64
	Gold        float64
	Chips       int64
}
