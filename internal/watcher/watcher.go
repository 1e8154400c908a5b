// Package watcher 将传输层消息路由到各牌桌会话的分发上下文，并把输出交给 Sink。
package watcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/palemoky/holdem-watch/internal/dispatch"
	"github.com/palemoky/holdem-watch/internal/logger"
	"github.com/palemoky/holdem-watch/internal/protocol"
	"github.com/palemoky/holdem-watch/internal/validate"
)

// Sink 接收分发输出，由智能体或终端实现
type Sink interface {
	Deliver(sessionID string, outputs []dispatch.Output) error
}

// Store 会话上下文存储
type Store interface {
	SaveContext(ctx context.Context, sessionID string, c *dispatch.Context) error
	LoadContext(ctx context.Context, sessionID string) (*dispatch.Context, error)
	DeleteContext(ctx context.Context, sessionID string) error
}

// session 单个牌桌会话，mu 保证同一会话串行处理
type session struct {
	mu  sync.Mutex
	ctx *dispatch.Context
}

// Watcher 多牌桌分发器
type Watcher struct {
	sink  Sink
	store Store // 可为 nil

	mu       sync.Mutex
	sessions map[string]*session
}

// New 创建 Watcher，store 为 nil 时上下文只保存在内存中
func New(sink Sink, store Store) *Watcher {
	return &Watcher{
		sink:     sink,
		store:    store,
		sessions: make(map[string]*session),
	}
}

// HandleMessage 处理一条服务端消息
func (w *Watcher) HandleMessage(ctx context.Context, msg *protocol.Message) error {
	switch msg.Type {
	case protocol.MsgState:
		snap, err := protocol.ParsePayload[protocol.Snapshot](msg)
		if err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		return w.HandleSnapshot(ctx, snap)
	case protocol.MsgTableClosed:
		payload, err := protocol.ParsePayload[protocol.TableClosedPayload](msg)
		if err != nil {
			return fmt.Errorf("decode table_closed: %w", err)
		}
		return w.HandleClose(ctx, payload.SessionID)
	default:
		logger.LogDebug("忽略消息类型: %s", msg.Type)
		return nil
	}
}

// HandleSnapshot 校验快照并运行分发状态机
func (w *Watcher) HandleSnapshot(ctx context.Context, snap *protocol.Snapshot) error {
	if err := validate.Snapshot(snap); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	sess, err := w.session(ctx, snap.SessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	outputs := dispatch.Process(snap, sess.ctx)
	saved := *sess.ctx
	sess.mu.Unlock()

	logger.LogDebug("session %s hand #%d %s: %d outputs", snap.SessionID, snap.HandNumber, snap.Phase, len(outputs))

	if w.store != nil {
		if err := w.store.SaveContext(ctx, snap.SessionID, &saved); err != nil {
			logger.LogError("保存会话上下文失败 %s: %v", snap.SessionID, err)
		}
	}

	if len(outputs) == 0 {
		return nil
	}
	return w.sink.Deliver(snap.SessionID, outputs)
}

// HandleClose 牌桌关闭：通知 TABLE_CLOSED 并丢弃会话上下文
func (w *Watcher) HandleClose(ctx context.Context, sessionID string) error {
	w.mu.Lock()
	delete(w.sessions, sessionID)
	w.mu.Unlock()

	if w.store != nil {
		if err := w.store.DeleteContext(ctx, sessionID); err != nil {
			logger.LogError("删除会话上下文失败 %s: %v", sessionID, err)
		}
	}

	logger.LogInfo("牌桌关闭: %s", sessionID)
	return w.sink.Deliver(sessionID, dispatch.Closed())
}

// Sessions 返回当前活跃会话数
func (w *Watcher) Sessions() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.sessions)
}

// session 获取会话，不存在时从 store 恢复或新建
func (w *Watcher) session(ctx context.Context, id string) (*session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if sess, ok := w.sessions[id]; ok {
		return sess, nil
	}

	c := dispatch.NewContext()
	if w.store != nil {
		loaded, err := w.store.LoadContext(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load context %s: %w", id, err)
		}
		if loaded != nil {
			logger.LogInfo("恢复会话上下文: %s (last reported hand #%d)", id, loaded.LastReportedHand)
			c = loaded
		}
	}

	sess := &session{ctx: c}
	w.sessions[id] = sess
	return sess, nil
}
