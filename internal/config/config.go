package config

// Config holds runtime configuration for the extractor and server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	ReportPath   string
	OutputPath   string
	RosterFile   string
	WatchEnabled bool
	Metrics      MetricsConfig
	Snapshots    SnapshotsConfig
}

// MetricsConfig controls telemetry exporters.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// SnapshotsConfig controls on-disk JSON snapshots of extracted documents.
type SnapshotsConfig struct {
	Enabled       bool
	BasePath      string
	RetentionDays int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		ReportPath:   envOrDefault(envReportPath, defaultReportPath),
		OutputPath:   envOrDefault(envOutputPath, defaultOutputPath),
		RosterFile:   envOrDefault(envRosterFile, ""),
		WatchEnabled: boolEnvOrDefault(envWatchEnabled, true),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshots(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, "setpiece-service"),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}

func loadSnapshots() SnapshotsConfig {
	return SnapshotsConfig{
		Enabled:       boolEnvOrDefault(envSnapshotOn, true),
		BasePath:      envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
	}
}
