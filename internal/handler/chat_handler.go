package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"amassah-lodge-go/internal/chatbot"
	"amassah-lodge-go/internal/middleware"
	"amassah-lodge-go/internal/model"
	"amassah-lodge-go/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // 允许所有来源
		},
	}
)

const (
	// 推送队列满时丢弃事件，客户端可以重新拉取聊天记录。
	wsEventBuffer = 32
	wsWriteWait   = 10 * time.Second
)

// ChatHandler 负责聊天窗口的 HTTP 接口和 WebSocket 推送。
type ChatHandler struct {
	manager *chatbot.Manager
}

// NewChatHandler 创建一个新的 ChatHandler。
func NewChatHandler(manager *chatbot.Manager) *ChatHandler {
	return &ChatHandler{manager: manager}
}

// SubmitMessageRequest 定义了发送聊天消息的请求体结构。
type SubmitMessageRequest struct {
	Text string `json:"text"`
}

// transcriptView 是聊天记录的响应结构。
type transcriptView struct {
	Messages  []model.ChatMessage `json:"messages"`
	Composing bool                `json:"composing"`
}

// wsFrame 是 WebSocket 上的一帧。客户端发送 message 或 clear；服务端推送 snapshot、message 或 cleared。
// 服务端帧带有会话内递增的 seq，客户端丢弃 seq 不大于已见值的帧。
type wsFrame struct {
	Seq       uint64              `json:"seq,omitempty"`
	Type      string              `json:"type"`
	Text      string              `json:"text,omitempty"`
	Message   *model.ChatMessage  `json:"message,omitempty"`
	Messages  []model.ChatMessage `json:"messages,omitempty"`
	Composing bool                `json:"composing"`
}

func (h *ChatHandler) session(c *gin.Context) *chatbot.Session {
	return h.manager.Session(c.Request.Context(), middleware.VisitorID(c))
}

func viewOf(s *chatbot.Session) transcriptView {
	messages, composing := s.Transcript()
	return transcriptView{Messages: messages, Composing: composing}
}

// GetTranscript 返回当前访客的聊天记录。
func (h *ChatHandler) GetTranscript(c *gin.Context) {
	respondOK(c, viewOf(h.session(c)))
}

// SubmitMessage 追加一条用户消息。空白消息或机器人正在回复时消息被忽略，accepted 为 false。
func (h *ChatHandler) SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("SubmitMessage: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "无效的请求负载", "data": nil})
		return
	}

	s := h.session(c)
	_, accepted := s.Submit(c.Request.Context(), req.Text)
	view := viewOf(s)
	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data": gin.H{
			"accepted":  accepted,
			"messages":  view.Messages,
			"composing": view.Composing,
		},
	})
}

// ClearTranscript 清空聊天记录，只保留一条欢迎消息。
func (h *ChatHandler) ClearTranscript(c *gin.Context) {
	s := h.session(c)
	s.Clear(c.Request.Context())
	respondOK(c, viewOf(s))
}

// Stream 把聊天窗口升级为 WebSocket，推送会话事件并接收用户消息。
func (h *ChatHandler) Stream(c *gin.Context) {
	visitorID := middleware.VisitorID(c)
	s := h.session(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket 升级失败", err)
		return
	}
	defer conn.Close()

	log.Infof("WebSocket 连接已建立，访客: %s", visitorID)

	events := make(chan wsFrame, wsEventBuffer)
	unsubscribe := s.Subscribe(func(ev chatbot.Event) {
		msg := ev.Message
		select {
		case events <- wsFrame{Seq: ev.Seq, Type: ev.Type, Message: &msg, Composing: ev.Composing}:
		default:
			log.Warnf("[ChatHandler] 访客 %s 的推送队列已满，丢弃事件 %s", visitorID, ev.Type)
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	defer close(done)
	go writeFrames(conn, events, done)

	messages, composing, seq := s.Snapshot()
	events <- wsFrame{Seq: seq, Type: "snapshot", Messages: messages, Composing: composing}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("从 WebSocket 读取消息失败: %v", err)
			}
			break
		}

		var frame wsFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			log.Warnf("[ChatHandler] 无法解析 WebSocket 消息: %v", err)
			continue
		}
		switch frame.Type {
		case "message":
			s.Submit(c.Request.Context(), frame.Text)
		case "clear":
			s.Clear(c.Request.Context())
		default:
			log.Warnf("[ChatHandler] 未知的 WebSocket 消息类型: %q", frame.Type)
		}
	}
	log.Infof("WebSocket 连接已关闭，访客: %s", visitorID)
}

// writeFrames 是连接上唯一的写入者。
func writeFrames(conn *websocket.Conn, events <-chan wsFrame, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case frame := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(frame); err != nil {
				log.Warnf("[ChatHandler] 写入 WebSocket 失败: %v", err)
				return
			}
		}
	}
}
