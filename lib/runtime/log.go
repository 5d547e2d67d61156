package runtime

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/polls/lib/common"
)

var log logging.Logger = logging.New("module", "runtime")

func init() {
	SetLogging(common.DefaultLogLevel, common.DefaultLogHandler)
}

func SetLogging(level logging.Lvl, handler logging.Handler) {
	common.SetLogging(log, level, handler)
}
