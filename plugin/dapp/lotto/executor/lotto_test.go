package executor

import (
	"math/rand"
	"testing"

	"github.com/33cn/chain33/account"
	apimocks "github.com/33cn/chain33/client/mocks"
	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/common/address"
	"github.com/33cn/chain33/common/crypto"
	dbm "github.com/33cn/chain33/common/db"
	_ "github.com/33cn/chain33/system"
	"github.com/33cn/chain33/types"
	"github.com/33cn/chain33/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

var (
	PrivKeyA = "0x6da92a632ab7deb67d38c0f6560bcfed28167998f6496db64c258d5e8393a81b" // 1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4
	PrivKeyB = "0x19c069234f9d3e61135fefbeb7791b149cdf6af536f26bebb310d4cd22c3fee4" // 1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR
	PrivKeyC = "0x7a80a1f75d7360c6123c32a78ecf978c1ac55636f87892df38d8b85a9aeff115" // 1NLHPEcbTWWxxU3dGUZBhayjrCHD3psX7k
	PrivKeyD = "0xcacb1f5d51700aea07fca2246ab43b0917d70405c65edea9b5063d72eb5c6b71" // 1MCftFynyvG2F4ED5mdHYgziDxx6vDrScs

	addrA = "1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4"
	addrB = "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR"
	addrC = "1NLHPEcbTWWxxU3dGUZBhayjrCHD3psX7k" // oracle
	addrD = "1MCftFynyvG2F4ED5mdHYgziDxx6vDrScs" // owner

	cfg = types.NewChain33Config(types.GetDefaultCfgstring())
)

const subJSON = `{
	"ownerAddr": "1MCftFynyvG2F4ED5mdHYgziDxx6vDrScs",
	"oracleAddr": "1NLHPEcbTWWxxU3dGUZBhayjrCHD3psX7k",
	"tokenSymbol": "FEE",
	"oracleFee": 0,
	"ticketPrice": 1,
	"prize": 4,
	"saleCap": 10,
	"earlyBirdCap": 3,
	"winnerCount": 2
}`

func init() {
	cfg.SetTitleOnlyForTest("chain33")
	Init(lottoty.LottoX, cfg, []byte(subJSON))
}

func newTestLotto(t *testing.T) (*Lotto, dbm.DB) {
	stateDB, err := dbm.NewGoMemDB("state", "state", 1024)
	require.NoError(t, err)
	_, _, kvdb := util.CreateTestDB()

	api := new(apimocks.QueueProtocolAPI)
	api.On("GetConfig").Return(cfg)

	driver := newLotto()
	driver.SetAPI(api)
	driver.SetStateDB(stateDB)
	driver.SetLocalDB(kvdb)
	driver.SetEnv(10, 1693526400, 1)

	acc := account.NewCoinsAccount(cfg)
	acc.SetDB(stateDB)
	execAddr := address.ExecAddress(lottoty.LottoX)
	for _, addr := range []string{addrA, addrB} {
		acc.SaveExecAccount(execAddr, &types.Account{Balance: 1000, Addr: addr})
	}
	return driver.(*Lotto), stateDB
}

func signTx(tx *types.Transaction, hexPrivKey string) (*types.Transaction, error) {
	signType := types.SECP256K1
	c, err := crypto.New(types.GetSignName("", signType))
	if err != nil {
		return tx, err
	}
	bytes, err := common.FromHex(hexPrivKey)
	if err != nil {
		return tx, err
	}
	privKey, err := c.PrivKeyFromBytes(bytes)
	if err != nil {
		return tx, err
	}
	tx.Sign(int32(signType), privKey)
	return tx, nil
}

func createTx(t *testing.T, action *lottoty.LottoAction, hexPrivKey string) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(lottoty.LottoX),
		Payload: types.Encode(action),
		Fee:     1e6,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(lottoty.LottoX),
	}
	tx, err := signTx(tx, hexPrivKey)
	require.NoError(t, err)
	return tx
}

func buyAction(amount int64) *lottoty.LottoAction {
	return &lottoty.LottoAction{
		Ty:    lottoty.LottoActionBuy,
		Value: &lottoty.LottoAction_Buy{Buy: &lottoty.LottoBuy{Amount: amount}},
	}
}

func buyReferralAction(amount int64, referrer string) *lottoty.LottoAction {
	return &lottoty.LottoAction{
		Ty:    lottoty.LottoActionBuyReferral,
		Value: &lottoty.LottoAction_BuyReferral{BuyReferral: &lottoty.LottoBuyReferral{Amount: amount, Referrer: referrer}},
	}
}

func deliverAction(requestID string, seed []byte) *lottoty.LottoAction {
	return &lottoty.LottoAction{
		Ty:    lottoty.LottoActionDeliverRand,
		Value: &lottoty.LottoAction_DeliverRand{DeliverRand: &lottoty.LottoDeliverRand{RequestId: requestID, Value: seed}},
	}
}

func execBuy(t *testing.T, lotto *Lotto, hexPrivKey string, amount int64) (*types.Receipt, error) {
	return lotto.Exec(createTx(t, buyAction(amount), hexPrivKey), 0)
}

func buyToCap(t *testing.T, lotto *Lotto) {
	for i := 0; i < 5; i++ {
		_, err := execBuy(t, lotto, PrivKeyA, 1)
		require.NoError(t, err)
		_, err = execBuy(t, lotto, PrivKeyB, 1)
		require.NoError(t, err)
	}
}

func TestBuyEarlyBird(t *testing.T) {
	lotto, stateDB := newTestLotto(t)

	keys := []string{PrivKeyA, PrivKeyB, PrivKeyA, PrivKeyB, PrivKeyA}
	for _, key := range keys {
		receipt, err := execBuy(t, lotto, key, 1)
		require.NoError(t, err)
		require.Equal(t, int32(types.ExecOk), receipt.Ty)
	}

	round, err := loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), round.Round)
	assert.Equal(t, int32(lottoty.LottoRoundOpen), round.Status)
	assert.Equal(t, int64(5), round.SoldTickets)
	assert.Equal(t, int64(3), round.BonusTickets)
	assert.Len(t, round.Tickets, 8)
	// 前三张付费票各附赠一张
	assert.Equal(t, int64(5), countTickets(round, addrA))
	assert.Equal(t, int64(3), countTickets(round, addrB))

	// 票款全部入池
	acc := account.NewCoinsAccount(cfg)
	acc.SetDB(stateDB)
	execAddr := address.ExecAddress(lottoty.LottoX)
	assert.Equal(t, int64(5), acc.LoadExecAccount(execAddr, execAddr).GetBalance())

	// 早鸟名额用尽后继续购票不再附赠
	for i := 0; i < 5; i++ {
		_, err := execBuy(t, lotto, PrivKeyA, 1)
		require.NoError(t, err)
	}
	round, err = loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int64(10), round.SoldTickets)
	assert.Equal(t, int64(3), round.BonusTickets)
	assert.Equal(t, int64(10), countTickets(round, addrA))
	assert.Equal(t, int32(lottoty.LottoRoundResetting), round.Status)
}

func TestBuyPaymentMismatch(t *testing.T) {
	lotto, stateDB := newTestLotto(t)

	_, err := execBuy(t, lotto, PrivKeyA, 2)
	assert.Equal(t, lottoty.ErrLottoPaymentMismatch, err)
	_, err = execBuy(t, lotto, PrivKeyA, 0)
	assert.Equal(t, lottoty.ErrLottoPaymentMismatch, err)

	round, err := loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int64(0), round.SoldTickets)
	assert.Len(t, round.Tickets, 0)
}

func TestBuyReferral(t *testing.T) {
	lotto, stateDB := newTestLotto(t)

	// 推荐人尚未持票，不触发推荐奖励
	receipt, err := lotto.Exec(createTx(t, buyReferralAction(1, addrB), PrivKeyA), 0)
	require.NoError(t, err)
	var buyLog lottoty.ReceiptLottoBuy
	require.NoError(t, types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &buyLog))
	assert.True(t, buyLog.EarlyBird)
	assert.False(t, buyLog.ReferralBonus)

	// 推荐人已持票，加赠一张
	receipt, err = lotto.Exec(createTx(t, buyReferralAction(1, addrA), PrivKeyB), 0)
	require.NoError(t, err)
	require.NoError(t, types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &buyLog))
	assert.True(t, buyLog.EarlyBird)
	assert.True(t, buyLog.ReferralBonus)
	assert.Equal(t, addrA, buyLog.Referrer)

	round, err := loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int64(2), round.SoldTickets)
	assert.Equal(t, int64(3), round.BonusTickets)
	assert.Len(t, round.Tickets, 5)
	assert.Equal(t, int64(3), countTickets(round, addrA))
	assert.Equal(t, int64(2), countTickets(round, addrB))
}

func TestCapCloseLocksRound(t *testing.T) {
	lotto, stateDB := newTestLotto(t)
	buyToCap(t, lotto)

	round, err := loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int32(lottoty.LottoRoundResetting), round.Status)
	assert.Equal(t, int64(10), round.SoldTickets)
	assert.NotEmpty(t, round.RandRequestId)

	_, err = execBuy(t, lotto, PrivKeyA, 1)
	assert.Equal(t, lottoty.ErrLottoRoundLocked, err)
}

func TestDeliverRandUnauthorized(t *testing.T) {
	lotto, stateDB := newTestLotto(t)
	buyToCap(t, lotto)

	round, err := loadRound(stateDB)
	require.NoError(t, err)

	_, err = lotto.Exec(createTx(t, deliverAction(round.RandRequestId, []byte("seed")), PrivKeyA), 0)
	assert.Equal(t, lottoty.ErrLottoNoPrivilege, err)

	after, err := loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, round.Round, after.Round)
	assert.Equal(t, int32(lottoty.LottoRoundResetting), after.Status)
	assert.Len(t, after.Tickets, len(round.Tickets))
}

func TestDeliverRandChecks(t *testing.T) {
	lotto, stateDB := newTestLotto(t)

	// 轮次未锁定
	_, err := lotto.Exec(createTx(t, deliverAction("0xabc", []byte("seed")), PrivKeyC), 0)
	assert.Equal(t, lottoty.ErrLottoRoundStatus, err)

	buyToCap(t, lotto)
	_, err = lotto.Exec(createTx(t, deliverAction("0xdeadbeef", []byte("seed")), PrivKeyC), 0)
	assert.Equal(t, lottoty.ErrLottoRandRequestMismatch, err)

	round, err := loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int32(lottoty.LottoRoundResetting), round.Status)
}

func TestSettlement(t *testing.T) {
	lotto, stateDB := newTestLotto(t)
	buyToCap(t, lotto)

	locked, err := loadRound(stateDB)
	require.NoError(t, err)

	seed := []byte("round-one-seed")
	winners := drawWinners(locked, seed, 2)
	require.Len(t, winners, 2)

	acc := account.NewCoinsAccount(cfg)
	acc.SetDB(stateDB)
	execAddr := address.ExecAddress(lottoty.LottoX)
	require.Equal(t, int64(10), acc.LoadExecAccount(execAddr, execAddr).GetBalance())

	before := map[string]int64{
		addrA: acc.LoadExecAccount(addrA, execAddr).GetBalance(),
		addrB: acc.LoadExecAccount(addrB, execAddr).GetBalance(),
	}
	expected := map[string]int64{}
	for _, winner := range winners {
		expected[winner] += 2
	}

	receipt, err := lotto.Exec(createTx(t, deliverAction(locked.RandRequestId, seed), PrivKeyC), 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)

	var settleLog lottoty.ReceiptLottoSettle
	require.NoError(t, types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &settleLog))
	assert.Equal(t, int64(1), settleLog.Round)
	assert.Equal(t, winners, settleLog.Winners)
	assert.Equal(t, int64(2), settleLog.PrizePerWinner)
	assert.Equal(t, int64(4), settleLog.TotalPaid)

	for addr, bonus := range expected {
		assert.Equal(t, before[addr]+bonus, acc.LoadExecAccount(addr, execAddr).GetBalance())
	}
	// 奖池扣除实际发放额，余数留存
	assert.Equal(t, int64(6), acc.LoadExecAccount(execAddr, execAddr).GetBalance())

	// 新一轮完全清零
	next, err := loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Round)
	assert.Equal(t, int32(lottoty.LottoRoundOpen), next.Status)
	assert.Equal(t, int64(0), next.SoldTickets)
	assert.Equal(t, int64(0), next.BonusTickets)
	assert.Len(t, next.Tickets, 0)
	assert.Empty(t, next.RandRequestId)

	// 新一轮首购仍享早鸟与推荐判定重置
	receipt, err = lotto.Exec(createTx(t, buyReferralAction(1, addrB), PrivKeyA), 0)
	require.NoError(t, err)
	var buyLog lottoty.ReceiptLottoBuy
	require.NoError(t, types.Decode(receipt.Logs[len(receipt.Logs)-1].Log, &buyLog))
	assert.True(t, buyLog.EarlyBird)
	assert.False(t, buyLog.ReferralBonus)
}

func TestDrawWinners(t *testing.T) {
	round := &lottoty.LottoRound{
		Round:   1,
		Tickets: []string{"a", "b", "c", "d", "e", "f", "g", "h"},
	}
	seed := []byte("deterministic")

	w1 := drawWinners(round, seed, 8)
	w2 := drawWinners(round, seed, 8)
	assert.Equal(t, w1, w2)
	assert.Len(t, w1, 8)
	// 不放回：全量抽取覆盖每张票各一次
	assert.ElementsMatch(t, round.Tickets, w1)

	// 名额超过票数时只抽到票尽
	w3 := drawWinners(round, seed, 20)
	assert.Len(t, w3, 8)

	// 不同种子给出不同排列
	w4 := drawWinners(round, []byte("another"), 8)
	assert.NotEqual(t, w1, w4)
}

func TestSetParam(t *testing.T) {
	lotto, stateDB := newTestLotto(t)

	setAction := &lottoty.LottoAction{
		Ty:    lottoty.LottoActionSetPrice,
		Value: &lottoty.LottoAction_SetPrice{SetPrice: &lottoty.LottoParamUpdate{Value: 5}},
	}
	_, err := lotto.Exec(createTx(t, setAction, PrivKeyA), 0)
	assert.Equal(t, lottoty.ErrLottoNoPrivilege, err)

	receipt, err := lotto.Exec(createTx(t, setAction, PrivKeyD), 0)
	require.NoError(t, err)
	var paramLog lottoty.ReceiptLottoParam
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &paramLog))
	assert.Equal(t, lottoty.ParamTicketPrice, paramLog.Name)
	assert.Equal(t, int64(1), paramLog.Prev)
	assert.Equal(t, int64(5), paramLog.Current)

	params, err := loadParams(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int64(5), params.TicketPrice)

	// 改价即时生效
	_, err = execBuy(t, lotto, PrivKeyA, 1)
	assert.Equal(t, lottoty.ErrLottoPaymentMismatch, err)
	_, err = execBuy(t, lotto, PrivKeyA, 5)
	assert.NoError(t, err)
}

func TestWithdrawSurplus(t *testing.T) {
	lotto, stateDB := newTestLotto(t)
	buyToCap(t, lotto)

	locked, err := loadRound(stateDB)
	require.NoError(t, err)
	_, err = lotto.Exec(createTx(t, deliverAction(locked.RandRequestId, []byte("seed")), PrivKeyC), 0)
	require.NoError(t, err)

	withdrawAction := &lottoty.LottoAction{
		Ty:    lottoty.LottoActionWithdrawSurplus,
		Value: &lottoty.LottoAction_WithdrawSurplus{WithdrawSurplus: &lottoty.LottoWithdrawSurplus{}},
	}
	_, err = lotto.Exec(createTx(t, withdrawAction, PrivKeyA), 0)
	assert.Equal(t, lottoty.ErrLottoNoPrivilege, err)

	acc := account.NewCoinsAccount(cfg)
	acc.SetDB(stateDB)
	execAddr := address.ExecAddress(lottoty.LottoX)
	require.Equal(t, int64(6), acc.LoadExecAccount(execAddr, execAddr).GetBalance())

	_, err = lotto.Exec(createTx(t, withdrawAction, PrivKeyD), 0)
	require.NoError(t, err)
	// 提取后恰好保留奖金额度
	assert.Equal(t, int64(4), acc.LoadExecAccount(execAddr, execAddr).GetBalance())
	assert.Equal(t, int64(2), acc.LoadExecAccount(addrD, execAddr).GetBalance())

	// 盈余为零时拒绝
	_, err = lotto.Exec(createTx(t, withdrawAction, PrivKeyD), 0)
	assert.Equal(t, lottoty.ErrLottoBalanceNotEnough, err)
}

func TestWithdrawFee(t *testing.T) {
	lotto, stateDB := newTestLotto(t)

	tokenAcc, err := account.NewAccountDB(cfg, "token", subcfg.TokenSymbol, stateDB)
	require.NoError(t, err)
	execAddr := address.ExecAddress(lottoty.LottoX)
	tokenAcc.SaveExecAccount(execAddr, &types.Account{Balance: 5, Addr: execAddr})

	withdraw := func(amount int64) *lottoty.LottoAction {
		return &lottoty.LottoAction{
			Ty:    lottoty.LottoActionWithdrawFee,
			Value: &lottoty.LottoAction_WithdrawFee{WithdrawFee: &lottoty.LottoWithdrawFee{Amount: amount}},
		}
	}

	_, err = lotto.Exec(createTx(t, withdraw(1), PrivKeyA), 0)
	assert.Equal(t, lottoty.ErrLottoNoPrivilege, err)

	_, err = lotto.Exec(createTx(t, withdraw(9), PrivKeyD), 0)
	assert.Equal(t, lottoty.ErrLottoBalanceNotEnough, err)

	_, err = lotto.Exec(createTx(t, withdraw(3), PrivKeyD), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tokenAcc.LoadExecAccount(execAddr, execAddr).GetBalance())
	assert.Equal(t, int64(3), tokenAcc.LoadExecAccount(addrD, execAddr).GetBalance())
}

func TestOracleFeeOnLock(t *testing.T) {
	savedFee := subcfg.OracleFee
	subcfg.OracleFee = 2
	defer func() { subcfg.OracleFee = savedFee }()

	lotto, stateDB := newTestLotto(t)
	tokenAcc, err := account.NewAccountDB(cfg, "token", subcfg.TokenSymbol, stateDB)
	require.NoError(t, err)
	execAddr := address.ExecAddress(lottoty.LottoX)
	tokenAcc.SaveExecAccount(execAddr, &types.Account{Balance: 5, Addr: execAddr})

	buyToCap(t, lotto)

	round, err := loadRound(stateDB)
	require.NoError(t, err)
	assert.Equal(t, int32(lottoty.LottoRoundResetting), round.Status)
	assert.Equal(t, int64(3), tokenAcc.LoadExecAccount(execAddr, execAddr).GetBalance())
	assert.Equal(t, int64(2), tokenAcc.LoadExecAccount(addrC, execAddr).GetBalance())
}

func TestQueries(t *testing.T) {
	lotto, _ := newTestLotto(t)

	_, err := execBuy(t, lotto, PrivKeyA, 1)
	require.NoError(t, err)
	_, err = execBuy(t, lotto, PrivKeyB, 1)
	require.NoError(t, err)

	msg, err := lotto.Query_GetRoundInfo(&types.ReqNil{})
	require.NoError(t, err)
	info := msg.(*lottoty.ReplyLottoRoundInfo)
	assert.Equal(t, int64(1), info.Round)
	assert.False(t, info.ResetInProcess)
	assert.Equal(t, int64(2), info.SoldTickets)
	assert.Equal(t, int64(2), info.BonusTickets)
	assert.Equal(t, int64(4), info.TotalTickets)

	msg, err = lotto.Query_GetEntrantTicketCount(&lottoty.ReqLottoEntrant{Addr: addrA})
	require.NoError(t, err)
	assert.Equal(t, int64(2), msg.(*types.Int64).Data)

	msg, err = lotto.Query_GetEntrantTicketCount(&lottoty.ReqLottoEntrant{Addr: addrD})
	require.NoError(t, err)
	assert.Equal(t, int64(0), msg.(*types.Int64).Data)

	_, err = lotto.Query_GetEntrantTicketCount(&lottoty.ReqLottoEntrant{})
	assert.Equal(t, types.ErrInvalidParam, err)

	msg, err = lotto.Query_GetParams(&types.ReqNil{})
	require.NoError(t, err)
	params := msg.(*lottoty.LottoParams)
	assert.Equal(t, int64(1), params.TicketPrice)
	assert.Equal(t, int64(4), params.Prize)

	msg, err = lotto.Query_GetTreasury(&types.ReqNil{})
	require.NoError(t, err)
	treasury := msg.(*lottoty.ReplyLottoTreasury)
	assert.Equal(t, int64(2), treasury.Balance)
	assert.Equal(t, int64(4), treasury.Reserved)
	assert.Equal(t, "FEE", treasury.FeeSymbol)
}

func TestExecLocalRollback(t *testing.T) {
	lotto, _ := newTestLotto(t)

	payload := &lottoty.LottoBuy{Amount: 1}
	tx := createTx(t, buyAction(1), PrivKeyA)
	receipt, err := lotto.Exec(tx, 0)
	require.NoError(t, err)

	receiptData := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := lotto.ExecLocal_Buy(payload, tx, receiptData, 0)
	require.NoError(t, err)
	require.Len(t, set.KV, 1)
	assert.NotNil(t, set.KV[0].Value)

	var record lottoty.LottoBuyRecord
	require.NoError(t, types.Decode(set.KV[0].Value, &record))
	assert.Equal(t, int64(1), record.Round)
	assert.Equal(t, int64(0), record.Index)
	assert.Equal(t, int64(1), record.Amount)
	assert.True(t, record.EarlyBird)

	delSet, err := lotto.ExecDelLocal_Buy(payload, tx, receiptData, 0)
	require.NoError(t, err)
	require.Len(t, delSet.KV, 1)
	assert.Equal(t, set.KV[0].Key, delSet.KV[0].Key)
	assert.Nil(t, delSet.KV[0].Value)
}
