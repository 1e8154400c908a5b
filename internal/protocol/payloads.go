package protocol

// SubscribePayload 订阅请求
type SubscribePayload struct {
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id,omitempty"` // 为空时订阅全部会话
	Token     string `json:"token,omitempty"`
}

// SubscribedPayload 订阅成功响应
type SubscribedPayload struct {
	RequestID string   `json:"request_id"`
	Sessions  []string `json:"sessions"`
}

// TableClosedPayload 牌桌关闭通知
type TableClosedPayload struct {
	SessionID string `json:"session_id"`
	Reason    string `json:"reason,omitempty"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
