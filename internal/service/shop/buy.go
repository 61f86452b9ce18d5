package shop

import (
	"context"

	"clicker_backend/internal/model"
)

// Buy покупка за фишки
func (s *serv) Buy(ctx context.Context, userID int, itemID string) (*model.ShopPurchase, error) {
	var purchase model.ShopPurchase
	err := s.players.Update(ctx, userID, func(data *model.PlayerData) error {
		var err error
		purchase, err = s.players.Engine().BuyItem(data, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}
