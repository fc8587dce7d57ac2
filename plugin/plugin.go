package plugin

import (
	_ "github.com/33lotto/plugin/plugin/dapp/lotto" //auto gen
)
