// Package transport 通过 WebSocket 订阅牌桌快照推送。
//
// 同一连接上的消息在 Run 中按到达顺序同步交给 handler，不做缓冲与重排。
package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/palemoky/holdem-watch/internal/logger"
	"github.com/palemoky/holdem-watch/internal/protocol"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	sendBufferSize = 16
)

// ErrClosed 连接已关闭
var ErrClosed = errors.New("connection closed")

// Handler 处理一条服务端消息
type Handler func(msg *protocol.Message)

// Client WebSocket 订阅客户端
type Client struct {
	URL              string
	Token            string
	SessionID        string // 为空时订阅全部会话
	HandshakeTimeout time.Duration

	// ID 本客户端实例标识，随每次订阅请求发送
	ID string

	// 回调
	OnError      func(error)    // 服务端错误消息回调
	OnSubscribed func([]string) // 订阅成功回调

	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewClient 创建客户端
func NewClient(url, token, sessionID string) *Client {
	return &Client{
		URL:              url,
		Token:            token,
		SessionID:        sessionID,
		HandshakeTimeout: 10 * time.Second,
		ID:               uuid.NewString(),
		send:             make(chan []byte, sendBufferSize),
		done:             make(chan struct{}),
	}
}

// Connect 连接服务器并发送订阅请求
func (c *Client) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: c.HandshakeTimeout,
	}

	header := http.Header{}
	if c.Token != "" {
		header.Set("Authorization", "Bearer "+c.Token)
	}
	header.Set("X-Client-ID", c.ID)

	conn, _, err := dialer.DialContext(ctx, c.URL, header)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.URL, err)
	}
	c.conn = conn

	go c.writePump()

	return c.subscribe()
}

func (c *Client) subscribe() error {
	msg, err := protocol.NewMessage(protocol.MsgSubscribe, protocol.SubscribePayload{
		RequestID: uuid.NewString(),
		SessionID: c.SessionID,
		Token:     c.Token,
	})
	if err != nil {
		return err
	}
	return c.Send(msg)
}

// Run 阻塞读取消息直到连接关闭或 ctx 取消。
// 服务端正常关闭时返回 nil，ctx 取消时返回 ctx.Err()。
func (c *Client) Run(ctx context.Context, handle Handler) error {
	stop := context.AfterFunc(ctx, c.Close)
	defer stop()

	err := c.readPump(handle)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// Send 发送消息
func (c *Client) Send(msg *protocol.Message) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	data, err := msg.Encode()
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return ErrClosed
	default:
		return errors.New("send buffer full")
	}
}

// Close 关闭连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.done)
		if c.conn != nil {
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			_ = c.conn.Close()
		}
	}
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Client) handleServerError(msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	if err != nil {
		logger.LogError("无法解析错误消息: %v", err)
		return
	}
	logger.LogError("服务端错误: %d %s", payload.Code, payload.Message)
	if c.OnError != nil {
		c.OnError(payload)
	}
}
