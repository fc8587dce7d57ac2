package executor

import (
	"encoding/binary"
	"math/big"

	"github.com/33cn/chain33/account"
	"github.com/33cn/chain33/client"
	"github.com/33cn/chain33/common"
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"
	"github.com/pkg/errors"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

// Action 单笔交易的执行上下文
type Action struct {
	coinsAccount *account.DB
	tokenAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	index        int
	api          client.QueueProtocolAPI
}

// NewAction create the action context from the driver and tx
func NewAction(l *Lotto, tx *types.Transaction, index int) (*Action, error) {
	cfg := l.GetAPI().GetConfig()
	tokenAccount, err := account.NewAccountDB(cfg, "token", subcfg.TokenSymbol, l.GetStateDB())
	if err != nil {
		return nil, errors.Wrapf(err, "open fee token account %s", subcfg.TokenSymbol)
	}
	return &Action{
		coinsAccount: l.GetCoinsAccount(),
		tokenAccount: tokenAccount,
		db:           l.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    l.GetBlockTime(),
		height:       l.GetHeight(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		index:        index,
		api:          l.GetAPI(),
	}, nil
}

func loadRound(db dbm.KV) (*lottoty.LottoRound, error) {
	value, err := db.Get(roundKey())
	if err == types.ErrNotFound {
		return &lottoty.LottoRound{Round: 1, Status: lottoty.LottoRoundOpen}, nil
	}
	if err != nil {
		return nil, err
	}
	var round lottoty.LottoRound
	err = types.Decode(value, &round)
	if err != nil {
		return nil, err
	}
	return &round, nil
}

func loadParams(db dbm.KV) (*lottoty.LottoParams, error) {
	value, err := db.Get(paramsKey())
	if err == types.ErrNotFound {
		return &lottoty.LottoParams{
			TicketPrice:  subcfg.TicketPrice,
			Prize:        subcfg.Prize,
			SaleCap:      subcfg.SaleCap,
			EarlyBirdCap: subcfg.EarlyBirdCap,
			WinnerCount:  subcfg.WinnerCount,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	var params lottoty.LottoParams
	err = types.Decode(value, &params)
	if err != nil {
		return nil, err
	}
	return &params, nil
}

func countTickets(round *lottoty.LottoRound, addr string) int64 {
	var count int64
	for _, owner := range round.Tickets {
		if owner == addr {
			count++
		}
	}
	return count
}

func (a *Action) saveRound(round *lottoty.LottoRound) *types.KeyValue {
	value := types.Encode(round)
	a.db.Set(roundKey(), value)
	return &types.KeyValue{Key: roundKey(), Value: value}
}

func (a *Action) saveParams(params *lottoty.LottoParams) *types.KeyValue {
	value := types.Encode(params)
	a.db.Set(paramsKey(), value)
	return &types.KeyValue{Key: paramsKey(), Value: value}
}

func (a *Action) treasuryBalance() int64 {
	return a.coinsAccount.LoadExecAccount(a.execaddr, a.execaddr).GetBalance()
}

func (a *Action) feeBalance() int64 {
	return a.tokenAccount.LoadExecAccount(a.execaddr, a.execaddr).GetBalance()
}

// LottoBuy 购票。支付必须与票价完全相等；进入早鸟名额的购票会附赠一张奖励票。
func (a *Action) LottoBuy(buy *lottoty.LottoBuy) (*types.Receipt, error) {
	return a.buy(buy.GetAmount(), "")
}

// LottoBuyReferral 带推荐人的购票。推荐人本轮已持票时加赠一张奖励票。
func (a *Action) LottoBuyReferral(buy *lottoty.LottoBuyReferral) (*types.Receipt, error) {
	return a.buy(buy.GetAmount(), buy.GetReferrer())
}

func (a *Action) buy(amount int64, referrer string) (*types.Receipt, error) {
	round, err := loadRound(a.db)
	if err != nil {
		return nil, err
	}
	if round.Status != lottoty.LottoRoundOpen {
		llog.Info("lotto buy rejected", "addr", a.fromaddr, "round", round.Round, "status", round.Status)
		return nil, lottoty.ErrLottoRoundLocked
	}
	params, err := loadParams(a.db)
	if err != nil {
		return nil, err
	}
	if amount != params.TicketPrice {
		llog.Info("lotto buy rejected", "addr", a.fromaddr, "amount", amount, "price", params.TicketPrice)
		return nil, lottoty.ErrLottoPaymentMismatch
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue

	receipt, err := a.coinsAccount.ExecTransfer(a.fromaddr, a.execaddr, a.execaddr, params.TicketPrice)
	if err != nil {
		llog.Error("LottoBuy.ExecTransfer", "addr", a.fromaddr, "execaddr", a.execaddr,
			"amount", params.TicketPrice, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)

	index := int64(len(round.Tickets))
	round.Tickets = append(round.Tickets, a.fromaddr)
	round.SoldTickets++

	// 推荐资格在本次付费票入账之后、奖励票发放之前判定
	referralBonus := referrer != "" && countTickets(round, referrer) > 0

	earlyBird := round.SoldTickets <= params.EarlyBirdCap
	if earlyBird {
		round.Tickets = append(round.Tickets, a.fromaddr)
		round.BonusTickets++
	}
	if referralBonus {
		round.Tickets = append(round.Tickets, referrer)
		round.BonusTickets++
	}

	buyLog := &lottoty.ReceiptLottoBuy{
		Round:         round.Round,
		Addr:          a.fromaddr,
		Index:         index,
		EarlyBird:     earlyBird,
		Referrer:      referrer,
		ReferralBonus: referralBonus,
	}
	logs = append(logs, &types.ReceiptLog{Ty: lottoty.TyLogLottoBuy, Log: types.Encode(buyLog)})

	if round.SoldTickets == params.SaleCap {
		reqLogs, reqKV, err := a.requestRandomness(round)
		if err != nil {
			return nil, err
		}
		logs = append(logs, reqLogs...)
		kv = append(kv, reqKV...)
	}

	kv = append(kv, a.saveRound(round))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// requestRandomness 锁定本轮并向预言机发起随机数请求，关联 id 取当前交易哈希
func (a *Action) requestRandomness(round *lottoty.LottoRound) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	round.Status = lottoty.LottoRoundResetting
	round.RandRequestId = common.ToHex(a.txhash)

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	if subcfg.OracleFee > 0 {
		if a.feeBalance() < subcfg.OracleFee {
			llog.Error("requestRandomness", "feeBalance", a.feeBalance(), "oracleFee", subcfg.OracleFee,
				"err", lottoty.ErrLottoBalanceNotEnough)
			return nil, nil, lottoty.ErrLottoBalanceNotEnough
		}
		receipt, err := a.tokenAccount.ExecTransfer(a.execaddr, subcfg.OracleAddr, a.execaddr, subcfg.OracleFee)
		if err != nil {
			llog.Error("requestRandomness.ExecTransfer", "oracle", subcfg.OracleAddr,
				"fee", subcfg.OracleFee, "err", err)
			return nil, nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	reqLog := &lottoty.ReceiptLottoRandRequest{
		Round:     round.Round,
		RequestId: round.RandRequestId,
		Oracle:    subcfg.OracleAddr,
		Fee:       subcfg.OracleFee,
	}
	logs = append(logs, &types.ReceiptLog{Ty: lottoty.TyLogLottoRandRequest, Log: types.Encode(reqLog)})
	llog.Info("lotto round locked", "round", round.Round, "requestId", round.RandRequestId)
	return logs, kv, nil
}

// LottoDeliverRand 预言机投递随机数并触发开奖结算
func (a *Action) LottoDeliverRand(deliver *lottoty.LottoDeliverRand) (*types.Receipt, error) {
	if a.fromaddr != subcfg.OracleAddr {
		llog.Error("LottoDeliverRand", "addr", a.fromaddr, "oracle", subcfg.OracleAddr,
			"err", lottoty.ErrLottoNoPrivilege)
		return nil, lottoty.ErrLottoNoPrivilege
	}
	round, err := loadRound(a.db)
	if err != nil {
		return nil, err
	}
	if round.Status != lottoty.LottoRoundResetting {
		return nil, lottoty.ErrLottoRoundStatus
	}
	if deliver.GetRequestId() != round.RandRequestId {
		return nil, lottoty.ErrLottoRandRequestMismatch
	}
	params, err := loadParams(a.db)
	if err != nil {
		return nil, err
	}

	var prizePerWinner int64
	if params.WinnerCount > 0 {
		prizePerWinner = params.Prize / params.WinnerCount
	}
	winners := drawWinners(round, deliver.GetValue(), params.WinnerCount)
	totalPaid := prizePerWinner * int64(len(winners))
	if totalPaid > 0 && a.treasuryBalance() < totalPaid {
		llog.Error("LottoDeliverRand", "treasury", a.treasuryBalance(), "totalPaid", totalPaid,
			"err", types.ErrNoBalance)
		return nil, types.ErrNoBalance
	}

	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	for _, winner := range winners {
		if prizePerWinner == 0 {
			break
		}
		receipt, err := a.coinsAccount.ExecTransfer(a.execaddr, winner, a.execaddr, prizePerWinner)
		if err != nil {
			llog.Error("LottoDeliverRand.ExecTransfer", "winner", winner,
				"amount", prizePerWinner, "err", err)
			return nil, err
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
	}

	settleLog := &lottoty.ReceiptLottoSettle{
		Round:          round.Round,
		WinnerCount:    params.WinnerCount,
		Winners:        winners,
		PrizePerWinner: prizePerWinner,
		TotalPaid:      totalPaid,
		BlockTime:      a.blocktime,
	}
	logs = append(logs, &types.ReceiptLog{Ty: lottoty.TyLogLottoSettle, Log: types.Encode(settleLog)})

	next := &lottoty.LottoRound{Round: round.Round + 1, Status: lottoty.LottoRoundOpen}
	kv = append(kv, a.saveRound(next))
	llog.Info("lotto round settled", "round", round.Round, "winners", len(winners),
		"prizePerWinner", prizePerWinner, "totalPaid", totalPaid)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// drawWinners 用随机种子逐张扩展，从全部已铸票中不放回抽取，返回中奖票的持有人
func drawWinners(round *lottoty.LottoRound, seed []byte, winnerCount int64) []string {
	total := int64(len(round.Tickets))
	pool := make([]int64, total)
	for i := range pool {
		pool[i] = int64(i)
	}
	var winners []string
	counter := make([]byte, 8)
	for i := int64(0); i < winnerCount && len(pool) > 0; i++ {
		binary.BigEndian.PutUint64(counter, uint64(i))
		h := common.Sha256(append(append([]byte{}, seed...), counter...))
		idx := new(big.Int).Mod(new(big.Int).SetBytes(h), big.NewInt(int64(len(pool)))).Int64()
		winners = append(winners, round.Tickets[pool[idx]])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return winners
}

func (a *Action) setParam(name string, value int64) (*types.Receipt, error) {
	if a.fromaddr != subcfg.OwnerAddr {
		llog.Error("lotto setParam", "addr", a.fromaddr, "owner", subcfg.OwnerAddr,
			"err", lottoty.ErrLottoNoPrivilege)
		return nil, lottoty.ErrLottoNoPrivilege
	}
	params, err := loadParams(a.db)
	if err != nil {
		return nil, err
	}
	var prev int64
	switch name {
	case lottoty.ParamTicketPrice:
		prev, params.TicketPrice = params.TicketPrice, value
	case lottoty.ParamPrize:
		prev, params.Prize = params.Prize, value
	case lottoty.ParamSaleCap:
		prev, params.SaleCap = params.SaleCap, value
	case lottoty.ParamEarlyBirdCap:
		prev, params.EarlyBirdCap = params.EarlyBirdCap, value
	case lottoty.ParamWinnerCount:
		prev, params.WinnerCount = params.WinnerCount, value
	default:
		return nil, types.ErrActionNotSupport
	}

	paramLog := &lottoty.ReceiptLottoParam{Name: name, Prev: prev, Current: value}
	logs := []*types.ReceiptLog{{Ty: lottoty.TyLogLottoParam, Log: types.Encode(paramLog)}}
	kv := []*types.KeyValue{a.saveParams(params)}
	llog.Info("lotto setParam", "name", name, "prev", prev, "current", value)
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

// LottoWithdrawSurplus 提取超出当前奖金保留额的国库余额
func (a *Action) LottoWithdrawSurplus() (*types.Receipt, error) {
	if a.fromaddr != subcfg.OwnerAddr {
		return nil, lottoty.ErrLottoNoPrivilege
	}
	params, err := loadParams(a.db)
	if err != nil {
		return nil, err
	}
	surplus := a.treasuryBalance() - params.Prize
	if surplus <= 0 {
		return nil, lottoty.ErrLottoBalanceNotEnough
	}
	receipt, err := a.coinsAccount.ExecTransfer(a.execaddr, a.fromaddr, a.execaddr, surplus)
	if err != nil {
		llog.Error("LottoWithdrawSurplus.ExecTransfer", "owner", a.fromaddr,
			"surplus", surplus, "err", err)
		return nil, err
	}
	llog.Info("lotto surplus withdrawn", "owner", a.fromaddr, "surplus", surplus)
	return receipt, nil
}

// LottoWithdrawFee 提取手续费代币余额
func (a *Action) LottoWithdrawFee(withdraw *lottoty.LottoWithdrawFee) (*types.Receipt, error) {
	if a.fromaddr != subcfg.OwnerAddr {
		return nil, lottoty.ErrLottoNoPrivilege
	}
	if withdraw.GetAmount() > a.feeBalance() {
		return nil, lottoty.ErrLottoBalanceNotEnough
	}
	receipt, err := a.tokenAccount.ExecTransfer(a.execaddr, a.fromaddr, a.execaddr, withdraw.GetAmount())
	if err != nil {
		llog.Error("LottoWithdrawFee.ExecTransfer", "owner", a.fromaddr,
			"amount", withdraw.GetAmount(), "err", err)
		return nil, err
	}
	return receipt, nil
}
