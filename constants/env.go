package constants

const (
	APPNAME           = "ruleexport"
	APPVERSION        = "0.1.0"
	PackFileExtension = "pack.toml"
)

const (
	EnvLogLevel           = "RULEEXPORT_LOG_LEVEL"
	EnvDebug              = "RULEEXPORT_DEBUG"
	EnvOtelEnabled        = "RULEEXPORT_OTEL_ENABLED"
	EnvOtelEndpoint       = "RULEEXPORT_OTEL_ENDPOINT"
	EnvOtelProtocol       = "RULEEXPORT_OTEL_PROTOCOL"
	EnvOtelTraceExecution = "RULEEXPORT_OTEL_TRACE_EXECUTION"
)
