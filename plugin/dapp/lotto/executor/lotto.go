// Package executor lotto 执行器：按轮次售票，卖满后由预言机投递随机数开奖
package executor

import (
	log "github.com/33cn/chain33/common/log/log15"
	drivers "github.com/33cn/chain33/system/dapp"
	"github.com/33cn/chain33/types"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

var llog = log.New("module", "execs."+lottoty.LottoX)

var driverName = lottoty.LottoX

type subConfig struct {
	OwnerAddr    string `json:"ownerAddr"`
	OracleAddr   string `json:"oracleAddr"`
	TokenSymbol  string `json:"tokenSymbol"`
	OracleFee    int64  `json:"oracleFee"`
	TicketPrice  int64  `json:"ticketPrice"`
	Prize        int64  `json:"prize"`
	SaleCap      int64  `json:"saleCap"`
	EarlyBirdCap int64  `json:"earlyBirdCap"`
	WinnerCount  int64  `json:"winnerCount"`
}

var subcfg subConfig

// Init register the lotto driver
func Init(name string, cfg *types.Chain33Config, sub []byte) {
	driverName = name
	if sub != nil {
		types.MustDecode(sub, &subcfg)
	}
	if subcfg.TokenSymbol == "" {
		subcfg.TokenSymbol = "FEE"
	}
	drivers.Register(cfg, driverName, newLotto, cfg.GetDappFork(driverName, "Enable"))
	InitExecType()
}

// InitExecType init exec func list
func InitExecType() {
	ety := types.LoadExecutorType(driverName)
	ety.InitFuncList(types.ListMethod(&Lotto{}))
}

// GetName return the driver name
func GetName() string {
	return newLotto().GetName()
}

// Lotto driver
type Lotto struct {
	drivers.DriverBase
}

func newLotto() drivers.Driver {
	l := &Lotto{}
	l.SetChild(l)
	l.SetExecutorType(types.LoadExecutorType(driverName))
	return l
}

// GetDriverName return the driver name
func (l *Lotto) GetDriverName() string {
	return driverName
}

// CheckTx basic payload validation before execution
func (l *Lotto) CheckTx(tx *types.Transaction, index int) error {
	var action lottoty.LottoAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return types.ErrDecode
	}
	switch action.GetTy() {
	case lottoty.LottoActionBuy:
		if action.GetBuy().GetAmount() <= 0 {
			return types.ErrInvalidParam
		}
	case lottoty.LottoActionBuyReferral:
		if action.GetBuyReferral().GetAmount() <= 0 {
			return types.ErrInvalidParam
		}
		if action.GetBuyReferral().GetReferrer() == "" {
			return types.ErrInvalidParam
		}
	case lottoty.LottoActionWithdrawFee:
		if action.GetWithdrawFee().GetAmount() <= 0 {
			return types.ErrInvalidParam
		}
	}
	return nil
}
