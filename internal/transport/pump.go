package transport

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/palemoky/holdem-watch/internal/logger"
	"github.com/palemoky/holdem-watch/internal/protocol"
)

// readPump 从服务器读取消息，订阅与错误消息在内部处理，其余交给 handle
func (c *Client) readPump(handle Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			err = fmt.Errorf("readPump panic: %v", r)
		}
		c.Close()
	}()

	c.setupPongHandler()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if c.isClosed() || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			logger.LogError("消息解析错误: %v", err)
			continue
		}

		switch msg.Type {
		case protocol.MsgSubscribed:
			if payload, err := protocol.ParsePayload[protocol.SubscribedPayload](msg); err == nil {
				logger.LogInfo("订阅成功: %v", payload.Sessions)
				if c.OnSubscribed != nil {
					c.OnSubscribed(payload.Sessions)
				}
			}
		case protocol.MsgError:
			c.handleServerError(msg)
		default:
			handle(msg)
		}
	}
}

func (c *Client) setupPongHandler() {
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
}

// writePump 向服务器写入消息并定时发送 ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		ticker.Stop()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.LogError("发送消息失败: %v", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}
