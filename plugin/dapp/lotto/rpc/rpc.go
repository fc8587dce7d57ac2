package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

type channelClient struct {
	rpctypes.ChannelClient
}

// Jrpc json rpc struct
type Jrpc struct {
	cli *channelClient
}

// Grpc grpc struct
type Grpc struct {
	*channelClient
}

// Init lotto rpc register
func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	grpc := &Grpc{channelClient: cli}
	cli.Init(name, s, &Jrpc{cli: cli}, grpc)
}

func (c *Jrpc) query(funcName string, req types.Message, result *interface{}) error {
	data, err := c.cli.QueueProtocolAPI.Query(lottoty.LottoX, funcName, req)
	if err != nil {
		return err
	}
	*result = data
	return nil
}

// GetRoundInfo 当前轮次状态
func (c *Jrpc) GetRoundInfo(req *types.ReqNil, result *interface{}) error {
	return c.query("GetRoundInfo", req, result)
}

// GetEntrantTicketCount 地址当前轮次持票数
func (c *Jrpc) GetEntrantTicketCount(req *lottoty.ReqLottoEntrant, result *interface{}) error {
	return c.query("GetEntrantTicketCount", req, result)
}

// GetParams 当前生效参数
func (c *Jrpc) GetParams(req *types.ReqNil, result *interface{}) error {
	return c.query("GetParams", req, result)
}

// GetTreasury 国库余额
func (c *Jrpc) GetTreasury(req *types.ReqNil, result *interface{}) error {
	return c.query("GetTreasury", req, result)
}

// GetSettleRecord 历史轮次结算记录
func (c *Jrpc) GetSettleRecord(req *lottoty.ReqLottoRound, result *interface{}) error {
	return c.query("GetSettleRecord", req, result)
}

// ListBuyRecords 地址购票记录
func (c *Jrpc) ListBuyRecords(req *lottoty.ReqLottoBuyHistory, result *interface{}) error {
	return c.query("ListBuyRecords", req, result)
}
