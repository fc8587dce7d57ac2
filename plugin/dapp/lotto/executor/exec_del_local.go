package executor

import (
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

func (l *Lotto) execDelLocalBuy(receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	dbSet := &types.LocalDBSet{}
	for _, item := range receiptData.Logs {
		if item.Ty != lottoty.TyLogLottoBuy {
			continue
		}
		var buyLog lottoty.ReceiptLottoBuy
		err := types.Decode(item.Log, &buyLog)
		if err != nil {
			return nil, err
		}
		key := calcLottoBuyKey(buyLog.Round, buyLog.Addr, dapp.HeightIndexStr(l.GetHeight(), int64(index)))
		dbSet.KV = append(dbSet.KV, &types.KeyValue{Key: key, Value: nil})
	}
	return dbSet, nil
}

// ExecDelLocal_Buy 回滚购票记录
func (l *Lotto) ExecDelLocal_Buy(payload *lottoty.LottoBuy, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execDelLocalBuy(receiptData, index)
}

// ExecDelLocal_BuyReferral 回滚推荐购票记录
func (l *Lotto) ExecDelLocal_BuyReferral(payload *lottoty.LottoBuyReferral, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execDelLocalBuy(receiptData, index)
}

// ExecDelLocal_DeliverRand 回滚开奖结算记录
func (l *Lotto) ExecDelLocal_DeliverRand(payload *lottoty.LottoDeliverRand, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	dbSet := &types.LocalDBSet{}
	for _, item := range receiptData.Logs {
		if item.Ty != lottoty.TyLogLottoSettle {
			continue
		}
		var settleLog lottoty.ReceiptLottoSettle
		err := types.Decode(item.Log, &settleLog)
		if err != nil {
			return nil, err
		}
		dbSet.KV = append(dbSet.KV, &types.KeyValue{Key: calcLottoSettleKey(settleLog.Round), Value: nil})
	}
	return dbSet, nil
}
