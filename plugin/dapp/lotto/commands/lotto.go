/*Package commands 彩票结算引擎的命令行交互
 */
package commands

import (
	"strings"

	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	"github.com/spf13/cobra"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

// LottoCmd 彩票命令集
func LottoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lotto",
		Short: "round based ticket lotto",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		buyCmd(),
		buyReferralCmd(),
		setParamCmd(),
		deliverRandCmd(),
		withdrawSurplusCmd(),
		withdrawFeeCmd(),
		roundInfoCmd(),
		ticketCountCmd(),
		paramsCmd(),
		treasuryCmd(),
		settleRecordCmd(),
		buyRecordsCmd(),
	)
	return cmd
}

func getRealExecName(paraName string, name string) string {
	if strings.HasPrefix(name, "user.p.") {
		return name
	}
	return paraName + name
}

func buyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "buy one ticket of the current round",
		Run:   buy,
	}
	cmd.Flags().Int64P("amount", "a", 0, "payment, must equal the ticket price")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func buy(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	amount, _ := cmd.Flags().GetInt64("amount")

	var res string
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName, lottoty.LottoX),
		ActionName: "Buy",
		Payload:    types.MustPBToJSON(&lottoty.LottoBuy{Amount: amount}),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, &res)
	ctx.RunWithoutMarshal()
}

func buyReferralCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy_referral",
		Short: "buy one ticket naming a referrer",
		Run:   buyReferral,
	}
	cmd.Flags().Int64P("amount", "a", 0, "payment, must equal the ticket price")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("referrer", "r", "", "referrer address")
	cmd.MarkFlagRequired("referrer")
	return cmd
}

func buyReferral(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	amount, _ := cmd.Flags().GetInt64("amount")
	referrer, _ := cmd.Flags().GetString("referrer")

	var res string
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName, lottoty.LottoX),
		ActionName: "BuyReferral",
		Payload:    types.MustPBToJSON(&lottoty.LottoBuyReferral{Amount: amount, Referrer: referrer}),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, &res)
	ctx.RunWithoutMarshal()
}

var paramActions = map[string]string{
	lottoty.ParamTicketPrice:  "SetPrice",
	lottoty.ParamPrize:        "SetPrize",
	lottoty.ParamSaleCap:      "SetSaleCap",
	lottoty.ParamEarlyBirdCap: "SetEarlyBirdCap",
	lottoty.ParamWinnerCount:  "SetWinnerCount",
}

func setParamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set_param",
		Short: "update one lotto parameter (owner only)",
		Run:   setParam,
	}
	cmd.Flags().StringP("name", "n", "", "parameter name: ticketPrice prize saleCap earlyBirdCap winnerCount")
	cmd.MarkFlagRequired("name")
	cmd.Flags().Int64P("value", "v", 0, "new value")
	cmd.MarkFlagRequired("value")
	return cmd
}

func setParam(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	name, _ := cmd.Flags().GetString("name")
	value, _ := cmd.Flags().GetInt64("value")

	action, ok := paramActions[name]
	if !ok {
		cmd.UsageFunc()(cmd)
		return
	}
	var res string
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName, lottoty.LottoX),
		ActionName: action,
		Payload:    types.MustPBToJSON(&lottoty.LottoParamUpdate{Value: value}),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, &res)
	ctx.RunWithoutMarshal()
}

func deliverRandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliver_rand",
		Short: "deliver oracle randomness and settle the round (oracle only)",
		Run:   deliverRand,
	}
	cmd.Flags().StringP("request_id", "i", "", "randomness request id of the locked round")
	cmd.MarkFlagRequired("request_id")
	cmd.Flags().StringP("value", "v", "", "random seed, hex encoded")
	cmd.MarkFlagRequired("value")
	return cmd
}

func deliverRand(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	requestID, _ := cmd.Flags().GetString("request_id")
	value, _ := cmd.Flags().GetString("value")

	var res string
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName, lottoty.LottoX),
		ActionName: "DeliverRand",
		Payload:    types.MustPBToJSON(&lottoty.LottoDeliverRand{RequestId: requestID, Value: []byte(value)}),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, &res)
	ctx.RunWithoutMarshal()
}

func withdrawSurplusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw_surplus",
		Short: "withdraw treasury balance above the prize reserve (owner only)",
		Run:   withdrawSurplus,
	}
	return cmd
}

func withdrawSurplus(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")

	var res string
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName, lottoty.LottoX),
		ActionName: "WithdrawSurplus",
		Payload:    types.MustPBToJSON(&lottoty.LottoWithdrawSurplus{}),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, &res)
	ctx.RunWithoutMarshal()
}

func withdrawFeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw_fee",
		Short: "withdraw collected fee tokens (owner only)",
		Run:   withdrawFee,
	}
	cmd.Flags().Int64P("amount", "a", 0, "fee token amount")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func withdrawFee(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")
	amount, _ := cmd.Flags().GetInt64("amount")

	var res string
	params := &rpctypes.CreateTxIn{
		Execer:     getRealExecName(paraName, lottoty.LottoX),
		ActionName: "WithdrawFee",
		Payload:    types.MustPBToJSON(&lottoty.LottoWithdrawFee{Amount: amount}),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.CreateTransaction", params, &res)
	ctx.RunWithoutMarshal()
}

func roundInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round_info",
		Short: "show the current round",
		Run: func(cmd *cobra.Command, args []string) {
			queryLotto(cmd, "GetRoundInfo", &types.ReqNil{}, &lottoty.ReplyLottoRoundInfo{})
		},
	}
	return cmd
}

func ticketCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket_count",
		Short: "show ticket count of an address in the current round",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			queryLotto(cmd, "GetEntrantTicketCount", &lottoty.ReqLottoEntrant{Addr: addr}, &types.Int64{})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "entrant address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func paramsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "show the effective lotto parameters",
		Run: func(cmd *cobra.Command, args []string) {
			queryLotto(cmd, "GetParams", &types.ReqNil{}, &lottoty.LottoParams{})
		},
	}
	return cmd
}

func treasuryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "show treasury and fee token balances",
		Run: func(cmd *cobra.Command, args []string) {
			queryLotto(cmd, "GetTreasury", &types.ReqNil{}, &lottoty.ReplyLottoTreasury{})
		},
	}
	return cmd
}

func settleRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle_record",
		Short: "show the settlement record of a past round",
		Run: func(cmd *cobra.Command, args []string) {
			round, _ := cmd.Flags().GetInt64("round")
			queryLotto(cmd, "GetSettleRecord", &lottoty.ReqLottoRound{Round: round}, &lottoty.ReceiptLottoSettle{})
		},
	}
	cmd.Flags().Int64P("round", "r", 0, "round number")
	cmd.MarkFlagRequired("round")
	return cmd
}

func buyRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy_records",
		Short: "list buy records of an address in a round",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			round, _ := cmd.Flags().GetInt64("round")
			queryLotto(cmd, "ListBuyRecords", &lottoty.ReqLottoBuyHistory{Addr: addr, Round: round}, &lottoty.LottoBuyRecords{})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "entrant address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int64P("round", "r", 0, "round number")
	cmd.MarkFlagRequired("round")
	return cmd
}

func queryLotto(cmd *cobra.Command, funcName string, req types.Message, reply types.Message) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	paraName, _ := cmd.Flags().GetString("paraName")

	params := rpctypes.Query4Jrpc{
		Execer:   getRealExecName(paraName, lottoty.LottoX),
		FuncName: funcName,
		Payload:  types.MustPBToJSON(req),
	}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, reply)
	ctx.Run()
}
