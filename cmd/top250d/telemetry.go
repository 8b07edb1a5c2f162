package main

import (
	"context"
	"os"

	"top250-backend/lib/scrapers/wzranked"
	"top250-backend/lib/telemetry"
	"top250-backend/lib/util/restyutil"
	"top250-backend/lib/util/serviceutil"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	err := telemetry.SetupFromEnv(ctx, "top250d")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("setup telemetry", err)
	}
	if err == nil {
		telemetry.InstrumentPerfStats(ctx)
	}

	if !verbose {
		return
	}

	wzranked.SetRestyInstrumentOutput(
		restyutil.NewFilesystemOutput("resty_telemetry/wzranked"),
	)
}
