package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldSheet     = "sheet"
	FieldTable     = "table"
	FieldRows      = "rows"
	FieldRow       = "row"
	FieldQuery     = "query"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldStep      = "step"
	FieldCategory  = "category"
	FieldDate      = "date"
	FieldSymbols   = "symbols"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldExchange  = "exchange"
	FieldRouting   = "routing_key"
	FieldReportID  = "report_id"
	FieldSnapshot  = "snapshot_id"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentSource   = "source"
	ComponentMarket   = "market"
	ComponentServices = "services"
	ComponentReport   = "report"
	ComponentAMQP     = "amqp"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpNormalize = "normalize"
	OpQuery     = "query"
	OpCompose   = "compose"
	OpFetch     = "fetch"
	OpPublish   = "publish"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
