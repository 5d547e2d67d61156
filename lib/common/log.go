package common

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	logging "github.com/inconshreveable/log15"

	"boscoin.io/polls/lib/errors"
)

const logTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// logErrorKey holds the reason a record or one of its keys could not be
// rendered.
const logErrorKey = "log_error"

var (
	DefaultLogLevel   logging.Lvl     = logging.LvlInfo
	DefaultLogHandler logging.Handler = logging.StreamHandler(os.Stdout, logging.TerminalFormat())
)

func SetLogging(logger logging.Logger, level logging.Lvl, handler logging.Handler) {
	logger.SetHandler(logging.LvlFilterHandler(level, handler))
}

// logValue turns a log context value into something json renders the
// same way every time.
func logValue(value interface{}) interface{} {
	switch v := value.(type) {
	case *errors.Error:
		if v == nil {
			return nil
		}
		e := map[string]interface{}{
			"code":    v.Code,
			"message": v.Message,
		}
		if len(v.Data) > 0 {
			e["data"] = v.Data
		}
		return e
	case time.Time:
		return v.UTC().Format(logTimeFormat)
	case []byte:
		return string(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return v
	}
}

// JSONLogFormat renders each record as one json object. Errors of the
// catalogue keep their code and data, raw messages are shown as text.
func JSONLogFormat(pretty, lineSeparated bool) logging.Format {
	marshal := json.Marshal
	if pretty {
		marshal = func(v interface{}) ([]byte, error) {
			return json.MarshalIndent(v, "", "    ")
		}
	}

	return logging.FormatFunc(func(r *logging.Record) []byte {
		props := map[string]interface{}{
			r.KeyNames.Time: r.Time.UTC().Format(logTimeFormat),
			r.KeyNames.Lvl:  r.Lvl.String(),
			r.KeyNames.Msg:  r.Msg,
		}

		for i := 0; i+1 < len(r.Ctx); i += 2 {
			k, ok := r.Ctx[i].(string)
			if !ok {
				props[logErrorKey] = fmt.Sprintf("%+v is not a string key", r.Ctx[i])
				continue
			}
			props[k] = logValue(r.Ctx[i+1])
		}

		b, err := marshal(props)
		if err != nil {
			b, _ = marshal(map[string]string{
				r.KeyNames.Msg: r.Msg,
				logErrorKey:    err.Error(),
			})
		}

		if lineSeparated {
			b = append(b, '\n')
		}

		return b
	})
}
