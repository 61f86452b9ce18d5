package slot

import (
	"context"

	"clicker_backend/internal/model"
)

// Spin списывает ставку и крутит слот. Ставка 0 - текущая ставка игрока
func (s *serv) Spin(ctx context.Context, userID int, spin model.SlotSpin) (*model.SlotResult, error) {
	var res model.SlotResult
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		bet := spin.Bet
		if bet == 0 {
			bet = data.CurrentBet
		}

		var err error
		res, err = s.players.Engine().Spin(data, bet)
		return err
	})
	if err != nil {
		return nil, err
	}

	// статистика только по сохранённым спинам
	s.statsRepo.Record(res.Outcome, res.Bet, res.Payout)
	return &res, nil
}
