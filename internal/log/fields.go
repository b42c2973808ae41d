package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldRecordID    = "record_id"
	FieldRecordName  = "record_name"
	FieldCategory    = "category"
	FieldKey         = "key"
	FieldBackend     = "backend"
	FieldMethod      = "method"
	FieldDuration    = "duration_ms"
	FieldStatusCode  = "status_code"
	FieldAssets      = "assets"
	FieldLiabilities = "liabilities"
	FieldSnapshots   = "snapshots"
	FieldSkipped     = "skipped"
	FieldNetWorth    = "net_worth"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentTracker = "tracker"
	ComponentStorage = "storage"
	ComponentGRPC    = "grpc"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpUpsert   = "upsert"
	OpDelete   = "delete"
	OpReset    = "reset"
	OpSnapshot = "snapshot"
	OpImport   = "import"
	OpExport   = "export"
	OpSeed     = "seed"
	OpMigrate  = "migrate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
