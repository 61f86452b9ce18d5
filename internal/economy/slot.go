package economy

import (
	"math"

	"clicker_backend/internal/model"
)

// SlotOdds таблица исходов с учётом удачи, проценты в сумме дают 100
func SlotOdds(cfg model.GameConfig, luck float64) []model.SlotOdds {
	if !(luck > 0) || !validAmount(luck) {
		luck = 0
	}

	weights := make([]float64, len(cfg.SlotOutcomes))
	var total float64
	for i, o := range cfg.SlotOutcomes {
		w := o.Weight
		if o.Lucky {
			w *= 1 + luck
		}
		weights[i] = w
		total += w
	}

	odds := make([]model.SlotOdds, len(cfg.SlotOutcomes))
	for i, o := range cfg.SlotOutcomes {
		odds[i] = model.SlotOdds{
			Outcome:    o.Outcome,
			Percent:    weights[i] / total * 100,
			Multiplier: o.Multiplier,
		}
	}
	return odds
}

// Odds таблица для конкретного игрока
func (e *Engine) Odds(data *model.PlayerData) []model.SlotOdds {
	return SlotOdds(e.cfg, e.Effects(data).SlotLuck)
}

// Spin списывает ставку, бросает исход и начисляет выплату
func (e *Engine) Spin(data *model.PlayerData, bet float64) (model.SlotResult, error) {
	if !validAmount(bet) || bet < e.cfg.MinBet || bet > e.cfg.MaxBet {
		return model.SlotResult{}, model.ErrInvalidBet
	}
	if err := SpendGold(data, bet); err != nil {
		return model.SlotResult{}, err
	}

	eff := e.Effects(data)
	odds := SlotOdds(e.cfg, eff.SlotLuck)
	idx := pickOutcome(odds, e.rng)
	outcome := e.cfg.SlotOutcomes[idx]

	payout := bet * outcome.Multiplier * e.goldBoost(data, eff)
	if !validAmount(payout) {
		payout = math.MaxFloat64
	}

	data.CurrentBet = bet
	data.TotalSpins++
	TrackQuest(data, model.QuestSpins, 1)

	// в заработок идёт только чистый выигрыш, возврат ставки не считается
	data.Gold += payout
	if payout > bet {
		addEarned(data, payout-bet)
		TrackQuest(data, model.QuestSlotWins, 1)
	}

	return model.SlotResult{
		Outcome:    outcome.Outcome,
		Reels:      e.reels(outcome),
		Bet:        bet,
		Multiplier: outcome.Multiplier,
		Payout:     payout,
		Gold:       data.Gold,
	}, nil
}

func pickOutcome(odds []model.SlotOdds, rng RandomSource) int {
	r := rng.Float64() * 100
	var cum float64
	last := 0
	for i, o := range odds {
		if o.Percent <= 0 {
			continue
		}
		last = i
		cum += o.Percent
		if r < cum {
			return i
		}
	}
	// хвост от погрешности округления
	return last
}

// reels подбирает символы под исход: выигрыш - три одинаковых,
// ничья - пара, проигрыш - все разные
func (e *Engine) reels(o model.SlotOutcomeConfig) [3]string {
	switch {
	case o.Symbol != "":
		return [3]string{o.Symbol, o.Symbol, o.Symbol}
	case o.Outcome == model.OutcomeDraw:
		picked := e.distinct(2)
		reels := [3]string{picked[0], picked[0], picked[1]}
		// одиночный символ на случайной позиции
		odd := intn(e.rng, 3)
		reels[2], reels[odd] = reels[odd], reels[2]
		return reels
	default:
		picked := e.distinct(3)
		return [3]string{picked[0], picked[1], picked[2]}
	}
}

// distinct n разных символов частичным Фишером-Йетсом
func (e *Engine) distinct(n int) []string {
	pool := append([]string(nil), e.cfg.SlotSymbols...)
	for i := 0; i < n; i++ {
		j := i + intn(e.rng, len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
