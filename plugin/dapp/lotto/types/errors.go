package types

import "errors"

var (
	// ErrLottoPaymentMismatch payment amount differs from the configured ticket price
	ErrLottoPaymentMismatch = errors.New("ErrLottoPaymentMismatch")
	// ErrLottoRoundLocked purchase attempted while the round is waiting for randomness
	ErrLottoRoundLocked = errors.New("ErrLottoRoundLocked")
	// ErrLottoNoPrivilege caller is not the owner (admin ops) or the oracle (delivery)
	ErrLottoNoPrivilege = errors.New("ErrLottoNoPrivilege")
	// ErrLottoBalanceNotEnough withdrawal exceeds the held balance
	ErrLottoBalanceNotEnough = errors.New("ErrLottoBalanceNotEnough")
	// ErrLottoRandRequestMismatch delivery does not match the pending request id
	ErrLottoRandRequestMismatch = errors.New("ErrLottoRandRequestMismatch")
	// ErrLottoRoundStatus action not valid in the current round status
	ErrLottoRoundStatus = errors.New("ErrLottoRoundStatus")
)
