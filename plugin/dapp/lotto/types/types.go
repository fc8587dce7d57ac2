package types

// lotto action ty
const (
	LottoActionBuy = 1 + iota
	LottoActionBuyReferral
	LottoActionSetPrice
	LottoActionSetPrize
	LottoActionSetSaleCap
	LottoActionSetEarlyBirdCap
	LottoActionSetWinnerCount
	LottoActionDeliverRand
	LottoActionWithdrawSurplus
	LottoActionWithdrawFee
)

// log for lotto
const (
	TyLogLottoBuy         = 901
	TyLogLottoRandRequest = 902
	TyLogLottoSettle      = 903
	TyLogLottoParam       = 904
)

// LottoX executor name
const LottoX = "lotto"

// round status
const (
	LottoRoundOpen = 1 + iota
	LottoRoundResetting
)

// parameter names used in ReceiptLottoParam
const (
	ParamTicketPrice  = "ticketPrice"
	ParamPrize        = "prize"
	ParamSaleCap      = "saleCap"
	ParamEarlyBirdCap = "earlyBirdCap"
	ParamWinnerCount  = "winnerCount"
)
