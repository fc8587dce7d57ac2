package executor

import (
	"github.com/33cn/chain33/types"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

// Exec_Buy 购票
func (l *Lotto) Exec_Buy(payload *lottoty.LottoBuy, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.LottoBuy(payload)
}

// Exec_BuyReferral 带推荐人购票
func (l *Lotto) Exec_BuyReferral(payload *lottoty.LottoBuyReferral, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.LottoBuyReferral(payload)
}

// Exec_SetPrice 修改票价
func (l *Lotto) Exec_SetPrice(payload *lottoty.LottoParamUpdate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setParam(lottoty.ParamTicketPrice, payload.GetValue())
}

// Exec_SetPrize 修改奖金总额
func (l *Lotto) Exec_SetPrize(payload *lottoty.LottoParamUpdate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setParam(lottoty.ParamPrize, payload.GetValue())
}

// Exec_SetSaleCap 修改本轮售票上限
func (l *Lotto) Exec_SetSaleCap(payload *lottoty.LottoParamUpdate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setParam(lottoty.ParamSaleCap, payload.GetValue())
}

// Exec_SetEarlyBirdCap 修改早鸟名额
func (l *Lotto) Exec_SetEarlyBirdCap(payload *lottoty.LottoParamUpdate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setParam(lottoty.ParamEarlyBirdCap, payload.GetValue())
}

// Exec_SetWinnerCount 修改中奖名额
func (l *Lotto) Exec_SetWinnerCount(payload *lottoty.LottoParamUpdate, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.setParam(lottoty.ParamWinnerCount, payload.GetValue())
}

// Exec_DeliverRand 预言机投递随机数并结算
func (l *Lotto) Exec_DeliverRand(payload *lottoty.LottoDeliverRand, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.LottoDeliverRand(payload)
}

// Exec_WithdrawSurplus 提取国库盈余
func (l *Lotto) Exec_WithdrawSurplus(payload *lottoty.LottoWithdrawSurplus, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.LottoWithdrawSurplus()
}

// Exec_WithdrawFee 提取手续费代币
func (l *Lotto) Exec_WithdrawFee(payload *lottoty.LottoWithdrawFee, tx *types.Transaction, index int) (*types.Receipt, error) {
	action, err := NewAction(l, tx, index)
	if err != nil {
		return nil, err
	}
	return action.LottoWithdrawFee(payload)
}
