package executor

import (
	"fmt"

	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

func roundKey() []byte {
	return []byte(fmt.Sprintf("mavl-%s-round", lottoty.LottoX))
}

func paramsKey() []byte {
	return []byte(fmt.Sprintf("mavl-%s-params", lottoty.LottoX))
}

func calcLottoBuyPrefix(round int64, addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-buy:%018d:%s", lottoty.LottoX, round, addr))
}

func calcLottoBuyKey(round int64, addr string, txID string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-buy:%018d:%s:%s", lottoty.LottoX, round, addr, txID))
}

func calcLottoSettleKey(round int64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-settle:%018d", lottoty.LottoX, round))
}
