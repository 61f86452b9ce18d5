package economy

import (
	"fmt"
	"time"

	"clicker_backend/internal/model"
)

const dateLayout = "2006-01-02"

// Engine чистая экономика игры. Все методы мутируют переданный PlayerData
// и не делают ввода-вывода. Один вызов - одна транзакция на стороне сервиса
type Engine struct {
	cfg   model.GameConfig
	rng   RandomSource
	clock Clock
	loc   *time.Location
}

func NewEngine(cfg model.GameConfig, rng RandomSource, clock Clock) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.TimeZone, err)
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{cfg: cfg, rng: rng, clock: clock, loc: loc}, nil
}

func (e *Engine) Config() model.GameConfig {
	return e.cfg
}

// NewPlayer запись нового игрока
func (e *Engine) NewPlayer() *model.PlayerData {
	data := model.NewPlayerData(e.cfg.StartingGold, e.cfg.MinBet)
	data.LastSeenAt = e.clock.Now().Unix()
	return data
}

// Prepare приводит загруженную запись в рабочее состояние:
// чинит поля, выдаёт квесты на сегодня, удаляет истёкшие бусты
func (e *Engine) Prepare(data *model.PlayerData, playerKey string) {
	data.Normalize()
	if data.CurrentBet <= 0 {
		data.CurrentBet = e.cfg.MinBet
	}
	e.RefreshQuests(data, playerKey)
	e.pruneBoosts(data)
}

// State снимок игрока с посчитанными множителями
func (e *Engine) State(data *model.PlayerData) model.PlayerState {
	eff := e.Effects(data)
	return model.PlayerState{
		Data:          *data,
		Effects:       eff,
		PrestigeBonus: e.PrestigeBonus(data),
		GoldBoost:     e.goldBoost(data, eff),
		TapPower:      e.tapPower(data, eff),
	}
}

func (e *Engine) today() string {
	return e.clock.Now().In(e.loc).Format(dateLayout)
}
