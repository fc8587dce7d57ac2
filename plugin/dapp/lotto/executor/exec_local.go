package executor

import (
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

func (l *Lotto) execLocalBuy(amount int64, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
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
		record := &lottoty.LottoBuyRecord{
			Round:     buyLog.Round,
			Index:     buyLog.Index,
			Amount:    amount,
			EarlyBird: buyLog.EarlyBird,
		}
		key := calcLottoBuyKey(buyLog.Round, buyLog.Addr, dapp.HeightIndexStr(l.GetHeight(), int64(index)))
		dbSet.KV = append(dbSet.KV, &types.KeyValue{Key: key, Value: types.Encode(record)})
	}
	return dbSet, nil
}

// ExecLocal_Buy 购票记录写入本地索引
func (l *Lotto) ExecLocal_Buy(payload *lottoty.LottoBuy, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execLocalBuy(payload.GetAmount(), receiptData, index)
}

// ExecLocal_BuyReferral 推荐购票记录写入本地索引
func (l *Lotto) ExecLocal_BuyReferral(payload *lottoty.LottoBuyReferral, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return l.execLocalBuy(payload.GetAmount(), receiptData, index)
}

// ExecLocal_DeliverRand 保存开奖结算记录
func (l *Lotto) ExecLocal_DeliverRand(payload *lottoty.LottoDeliverRand, tx *types.Transaction, receiptData *types.ReceiptData, index int) (*types.LocalDBSet, error) {
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
		dbSet.KV = append(dbSet.KV, &types.KeyValue{
			Key:   calcLottoSettleKey(settleLog.Round),
			Value: types.Encode(&settleLog),
		})
	}
	return dbSet, nil
}
