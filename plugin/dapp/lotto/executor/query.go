package executor

import (
	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

// Query_GetRoundInfo 查询当前轮次状态
func (l *Lotto) Query_GetRoundInfo(in *types.ReqNil) (types.Message, error) {
	round, err := loadRound(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &lottoty.ReplyLottoRoundInfo{
		Round:          round.Round,
		ResetInProcess: round.Status == lottoty.LottoRoundResetting,
		SoldTickets:    round.SoldTickets,
		BonusTickets:   round.BonusTickets,
		TotalTickets:   int64(len(round.Tickets)),
	}, nil
}

// Query_GetEntrantTicketCount 查询地址在当前轮次的持票数
func (l *Lotto) Query_GetEntrantTicketCount(in *lottoty.ReqLottoEntrant) (types.Message, error) {
	if in.GetAddr() == "" {
		return nil, types.ErrInvalidParam
	}
	round, err := loadRound(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: countTickets(round, in.GetAddr())}, nil
}

// Query_GetParams 查询当前生效参数
func (l *Lotto) Query_GetParams(in *types.ReqNil) (types.Message, error) {
	return loadParams(l.GetStateDB())
}

// Query_GetTreasury 查询国库余额与奖金保留额
func (l *Lotto) Query_GetTreasury(in *types.ReqNil) (types.Message, error) {
	params, err := loadParams(l.GetStateDB())
	if err != nil {
		return nil, err
	}
	cfg := l.GetAPI().GetConfig()
	execaddr := dapp.ExecAddress(l.GetCurrentExecName())
	tokenAccount, err := account.NewAccountDB(cfg, "token", subcfg.TokenSymbol, l.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &lottoty.ReplyLottoTreasury{
		Balance:    l.GetCoinsAccount().LoadExecAccount(execaddr, execaddr).GetBalance(),
		Reserved:   params.Prize,
		FeeBalance: tokenAccount.LoadExecAccount(execaddr, execaddr).GetBalance(),
		FeeSymbol:  subcfg.TokenSymbol,
	}, nil
}

// Query_GetSettleRecord 查询指定轮次的结算记录
func (l *Lotto) Query_GetSettleRecord(in *lottoty.ReqLottoRound) (types.Message, error) {
	value, err := l.GetLocalDB().Get(calcLottoSettleKey(in.GetRound()))
	if err != nil {
		return nil, err
	}
	var settle lottoty.ReceiptLottoSettle
	err = types.Decode(value, &settle)
	if err != nil {
		return nil, err
	}
	return &settle, nil
}

// Query_ListBuyRecords 查询地址在指定轮次的购票记录
func (l *Lotto) Query_ListBuyRecords(in *lottoty.ReqLottoBuyHistory) (types.Message, error) {
	if in.GetAddr() == "" {
		return nil, types.ErrInvalidParam
	}
	values, err := l.GetLocalDB().List(calcLottoBuyPrefix(in.GetRound(), in.GetAddr()), nil, 0, 1)
	if err != nil {
		return nil, err
	}
	records := &lottoty.LottoBuyRecords{}
	for _, value := range values {
		var record lottoty.LottoBuyRecord
		err = types.Decode(value, &record)
		if err != nil {
			return nil, err
		}
		records.Records = append(records.Records, &record)
	}
	return records, nil
}
