package constants

// Roles
const (
	ROLE_USER  = "USER"
	ROLE_STAFF = "STAFF"
	ROLE_ADMIN = "ADMIN"
)

// Ticket statuses
const (
	TICKET_ACTIVE  = "ACTIVE"
	TICKET_USED    = "USED"
	TICKET_EXPIRED = "EXPIRED"
)

// Show statuses
const (
	SHOW_SCHEDULED = "SCHEDULED"
	SHOW_ONGOING   = "ONGOING"
	SHOW_FINISHED  = "FINISHED"
)

// Payment methods accepted at ticket purchase
var PaymentMethods = []string{"CREDIT_CARD", "PAYPAL", "BANK_TRANSFER"}

// Response messages
const (
	ERROR_INPUT              = "Invalid input"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_CREATE             = "Unable to create record"
	DATA_INPUT_IS_NOT_NUMBER = "Parameter must be a number"
	MISSING_LOGIN_INPUT      = "Email and password are required"
	INVALID_EMAIL            = "Email does not exist"
	INVALID_PASSWORD         = "Incorrect password"
	CAN_NOT_HASH_PASSWORD    = "Unable to hash password"
	NOT_ADMIN                = "Admin role required"
	NOT_STAFF                = "Staff role required"
	PERMISSION_DENIED        = "Permission denied"

	TICKET_NOT_FOUND      = "Ticket not found"
	TICKET_TYPE_NOT_FOUND = "Ticket type not found"
	PLANNER_NOT_FOUND     = "Planner not found"
	VALIDITY_IN_PAST      = "Validity date cannot be in the past"
	TICKET_ALREADY_USED   = "Ticket already used"
	TICKET_INVALID_STATUS = "Ticket is not active"
	TICKET_WRONG_DAY      = "Ticket can only be validated on the indicated date"
)
