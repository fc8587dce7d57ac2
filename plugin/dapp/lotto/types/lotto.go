// Package types lotto 合约的类型定义与注册
package types

import (
	"reflect"

	log "github.com/33cn/chain33/common/log/log15"
	"github.com/33cn/chain33/types"
)

var (
	llog = log.New("module", "exectype."+LottoX)

	actionTypeMap = map[string]int32{
		"Buy":             LottoActionBuy,
		"BuyReferral":     LottoActionBuyReferral,
		"SetPrice":        LottoActionSetPrice,
		"SetPrize":        LottoActionSetPrize,
		"SetSaleCap":      LottoActionSetSaleCap,
		"SetEarlyBirdCap": LottoActionSetEarlyBirdCap,
		"SetWinnerCount":  LottoActionSetWinnerCount,
		"DeliverRand":     LottoActionDeliverRand,
		"WithdrawSurplus": LottoActionWithdrawSurplus,
		"WithdrawFee":     LottoActionWithdrawFee,
	}
	logInfoMap = map[int64]*types.LogInfo{
		TyLogLottoBuy:         {Ty: reflect.TypeOf(ReceiptLottoBuy{}), Name: "LogLottoBuy"},
		TyLogLottoRandRequest: {Ty: reflect.TypeOf(ReceiptLottoRandRequest{}), Name: "LogLottoRandRequest"},
		TyLogLottoSettle:      {Ty: reflect.TypeOf(ReceiptLottoSettle{}), Name: "LogLottoSettle"},
		TyLogLottoParam:       {Ty: reflect.TypeOf(ReceiptLottoParam{}), Name: "LogLottoParam"},
	}
)

func init() {
	types.AllowUserExec = append(types.AllowUserExec, []byte(LottoX))
	types.RegFork(LottoX, InitFork)
	types.RegExec(LottoX, InitExecutor)
}

// InitFork init fork
func InitFork(cfg *types.Chain33Config) {
	cfg.RegisterDappFork(LottoX, "Enable", 0)
}

// InitExecutor init executor type
func InitExecutor(cfg *types.Chain33Config) {
	types.RegistorExecutor(LottoX, NewType(cfg))
}

// LottoType exec type
type LottoType struct {
	types.ExecTypeBase
}

// NewType new a LottoType object
func NewType(cfg *types.Chain33Config) *LottoType {
	c := &LottoType{}
	c.SetChild(c)
	c.SetConfig(cfg)
	return c
}

// GetName return the executor name
func (l *LottoType) GetName() string {
	return LottoX
}

// GetPayload return the action payload prototype
func (l *LottoType) GetPayload() types.Message {
	return &LottoAction{}
}

// GetTypeMap return action name to ty mapping
func (l *LottoType) GetTypeMap() map[string]int32 {
	return actionTypeMap
}

// GetLogMap return receipt log decoders
func (l *LottoType) GetLogMap() map[int64]*types.LogInfo {
	return logInfoMap
}
