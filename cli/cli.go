package main

import (
	_ "github.com/33cn/chain33/system"
	"github.com/33cn/chain33/util/cli"

	_ "github.com/33lotto/plugin/plugin"
)

func main() {
	cli.Run("", "", "lotto-cli")
}
