package model

import (
	"errors"
	"fmt"
	"time"
)

// Ошибки движка слотов и леджера
var (
	// ErrInvalidBet - ставка вне границ автомата или больше баланса
	ErrInvalidBet = errors.New("invalid bet")
	// ErrInsufficientCredits - на балансе не хватает кредитов на ставку.
	// errors.Is(err, ErrInvalidBet) для неё тоже истинно
	ErrInsufficientCredits = fmt.Errorf("%w: insufficient credits", ErrInvalidBet)
	// ErrUnknownMachine - неизвестный тип автомата
	ErrUnknownMachine = errors.New("unknown machine")
	// ErrAlreadyClaimed - ежедневный бонус ещё не доступен
	ErrAlreadyClaimed = errors.New("daily bonus already claimed")
	// ErrConcurrencyConflict - конкурентное изменение аккаунта, операцию можно повторить
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	// ErrAccountNotFound - аккаунт не найден
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists - аккаунт уже создан
	ErrAccountExists = errors.New("account already exists")
	// ErrInvariantViolation - мутация нарушила инварианты аккаунта и была отменена
	ErrInvariantViolation = errors.New("account invariant violation")
)

// AlreadyClaimedError - отказ в ежедневном бонусе с временем следующей попытки
type AlreadyClaimedError struct {
	NextEligibleAt time.Time
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s: next claim at %s", ErrAlreadyClaimed, e.NextEligibleAt.UTC().Format(time.RFC3339))
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}
