package model

import "errors"

// Доменные ошибки (нарушение предусловий, а не сбой)
var (
	ErrInsufficientGold  = errors.New("insufficient gold")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrInvalidBet        = errors.New("invalid bet")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrMaxLevel          = errors.New("max level reached")
	ErrPrestigeNotReady  = errors.New("not enough lifetime gold to prestige")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrUnknownQuest      = errors.New("unknown quest")
	ErrQuestIncomplete   = errors.New("quest is not complete")
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrAlreadyOwned      = errors.New("item already owned")
)

// Ошибки аккаунтов и хранилища
var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrWeakCredentials    = errors.New("login required and password must be at least 6 characters")
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrMalformedSave      = errors.New("malformed save data")
)
