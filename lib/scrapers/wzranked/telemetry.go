package wzranked

import (
	"top250-backend/lib/telemetry"
	"top250-backend/lib/util/restyutil"
)

var tracer = telemetry.Tracer("top250.lib.scrapers.wzranked")

var instrumentOutput restyutil.InstrumentOutput

// must be called before NewClient for the hooks to attach
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	instrumentOutput = out
}
