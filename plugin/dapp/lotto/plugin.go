package lotto

import (
	"github.com/33cn/chain33/pluginmgr"

	"github.com/33lotto/plugin/plugin/dapp/lotto/commands"
	"github.com/33lotto/plugin/plugin/dapp/lotto/executor"
	"github.com/33lotto/plugin/plugin/dapp/lotto/rpc"
	lottoty "github.com/33lotto/plugin/plugin/dapp/lotto/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     lottoty.LottoX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.LottoCmd,
		RPC:      rpc.Init,
	})
}
