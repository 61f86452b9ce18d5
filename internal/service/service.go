package service

import (
	"context"

	"clicker_backend/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type PlayerService interface {
	State(ctx context.Context, userID int) (*model.PlayerState, error)
	SetBet(ctx context.Context, userID int, bet float64) (float64, error)
	CollectIdle(ctx context.Context, userID int) (*model.IdleCollect, error)
}

type ClickService interface {
	Tap(ctx context.Context, userID int, tap model.Tap) (*model.ClickResult, error)
}

type SlotService interface {
	Spin(ctx context.Context, userID int, spin model.SlotSpin) (*model.SlotResult, error)
	Odds(ctx context.Context, userID int) ([]model.SlotOdds, error)
	Stats() model.SlotStats
}

type UpgradeService interface {
	List(ctx context.Context, userID int) ([]model.UpgradeInfo, error)
	Buy(ctx context.Context, userID int, upgradeID string) (*model.UpgradeResult, error)
}

type PrestigeService interface {
	Preview(ctx context.Context, userID int) (*model.PrestigePreview, error)
	Prestige(ctx context.Context, userID int) (*model.PrestigeResult, error)
}

type DailyService interface {
	ClaimLogin(ctx context.Context, userID int) (*model.DailyLoginReward, error)
	Quests(ctx context.Context, userID int) ([]model.DailyQuest, error)
	ClaimQuest(ctx context.Context, userID int, questID string) (*model.QuestClaim, error)
}

type ShopService interface {
	Items(ctx context.Context, userID int) ([]model.ShopEntry, error)
	Buy(ctx context.Context, userID int, itemID string) (*model.ShopPurchase, error)
}
