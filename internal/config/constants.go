package config

import "time"

const (
	envPort          = "PORT"
	envPollInterval  = "POLL_INTERVAL"
	envProvider      = "PROVIDER"
	envReportPath    = "REPORT_PATH"
	envOutputPath    = "OUTPUT_PATH"
	envRosterFile    = "ROSTER_FILE"
	envWatchEnabled  = "WATCH_ENABLED"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envSnapshotOn    = "SNAPSHOT_ENABLED"
	envSnapshotDays  = "SNAPSHOT_RETENTION_DAYS"

	defaultPort     = "4000"
	defaultProvider = "file"
	// The report changes rarely (set-piece notes update around gameweeks),
	// so a relaxed default keeps the poller quiet.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultReportPath   = "fpl_set_piece_takers.txt"
	defaultOutputPath   = "set_piece_takers_structured.json"
	defaultMetricsPort  = "9090"
	defaultSnapshotDir  = "data/snapshots"
	defaultSnapshotDays = 14
)
