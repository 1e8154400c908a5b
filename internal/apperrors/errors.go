package apperrors

import (
	"fmt"

	"github.com/palemoky/holdem-watch/internal/protocol"
)

// SnapshotError 快照校验错误
type SnapshotError struct {
	Code    int
	Field   string
	Message string
}

func (e *SnapshotError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is 按错误码匹配，便于 errors.Is 与预定义错误比较
func (e *SnapshotError) Is(target error) bool {
	t, ok := target.(*SnapshotError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithField 返回附带字段信息的副本
func (e *SnapshotError) WithField(format string, args ...any) *SnapshotError {
	return &SnapshotError{
		Code:    e.Code,
		Field:   fmt.Sprintf(format, args...),
		Message: e.Message,
	}
}

// 预定义错误
var (
	ErrInvalidSnapshot = newError(protocol.ErrCodeInvalidSnapshot)
	ErrDuplicateSeat   = newError(protocol.ErrCodeDuplicateSeat)
	ErrBoardMismatch   = newError(protocol.ErrCodeBoardMismatch)
	ErrHoleCards       = newError(protocol.ErrCodeHoleCards)
	ErrUnknownPhase    = newError(protocol.ErrCodeUnknownPhase)
	ErrSessionNotFound = newError(protocol.ErrCodeSessionNotFound)
)

func newError(code int) *SnapshotError {
	return &SnapshotError{Code: code, Message: protocol.ErrorMessages[code]}
}
