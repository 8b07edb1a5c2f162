package leaderboard

import "top250-backend/lib/telemetry"

var tracer = telemetry.Tracer("top250.services.leaderboard")
