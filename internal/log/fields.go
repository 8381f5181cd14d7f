package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldSlotKey    = "slot_key"
	FieldExpenseID  = "expense_id"
	FieldCategory   = "category"
	FieldAmount     = "amount"
	FieldCurrency   = "currency"
	FieldQueryText  = "query"
)

// Components defines standard component names.
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStore     = "store"
	ComponentExpense   = "expense"
	ComponentProfile   = "profile"
	ComponentCategory  = "category"
	ComponentAssistant = "assistant"
	ComponentReport    = "report"
	ComponentBackend   = "backend"
)

// Operations defines standard operation names.
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpRegister = "register"
	OpRespond  = "respond"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
