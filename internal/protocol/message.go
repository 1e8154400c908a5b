package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgSubscribe   MessageType = "subscribe"   // 订阅牌桌
	MsgUnsubscribe MessageType = "unsubscribe" // 取消订阅
)

// 服务端 → 客户端 消息类型
const (
	MsgSubscribed  MessageType = "subscribed"   // 订阅成功
	MsgState       MessageType = "state"        // 牌桌快照
	MsgTableClosed MessageType = "table_closed" // 牌桌关闭
	MsgError       MessageType = "error"        // 错误消息
)
