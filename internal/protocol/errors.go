package protocol

// 错误码
const (
	ErrCodeUnknown         = 1000
	ErrCodeInvalidMsg      = 1001
	ErrCodeUnauthorized    = 1002
	ErrCodeSessionNotFound = 2001
	ErrCodeInvalidSnapshot = 3001
	ErrCodeDuplicateSeat   = 3002
	ErrCodeBoardMismatch   = 3003
	ErrCodeHoleCards       = 3004
	ErrCodeUnknownPhase    = 3005
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:         "unknown error",
	ErrCodeInvalidMsg:      "invalid message format",
	ErrCodeUnauthorized:    "unauthorized",
	ErrCodeSessionNotFound: "session not found",
	ErrCodeInvalidSnapshot: "invalid snapshot",
	ErrCodeDuplicateSeat:   "duplicate seat",
	ErrCodeBoardMismatch:   "board does not match phase",
	ErrCodeHoleCards:       "hole cards must be empty or a pair",
	ErrCodeUnknownPhase:    "unknown phase",
}
