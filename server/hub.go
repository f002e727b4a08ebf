package server

import (
	"encoding/json"
	"net/http"

	"fluidlevel/calculator"
	"fluidlevel/model"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// 消息类型
const (
	typeCalcLevel   = "calc_level"
	typeEstimatePIP = "estimate_pip"

	typeResult = "result"
	typePIP    = "pip"
	typeError  = "error"
)

// Hub 对应一条 websocket 连接，请求与回复通过 channel 解耦
type Hub struct {
	s    *Server
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(s *Server, conn *websocket.Conn) *Hub {
	return &Hub{
		s:     s,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	h := NewHub(s, conn)
	go h.handleRequest()
	go h.handleResponse()
	h.readLoop()
}

func (h *Hub) readLoop() {
	defer func() {
		close(h.done)
		h.conn.Close()
	}()
	for {
		var m model.Msg
		if err := h.conn.ReadJSON(&m); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		select {
		case h.msg <- m:
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Warn("websocket write failed")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case m := <-h.msg:
			reply := h.dispatch(m)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: typeError, Content: err.Error()}
}

func (h *Hub) dispatch(m model.Msg) model.Msg {
	switch m.Type {
	case typeCalcLevel:
		var req model.WellRequest
		if err := json.Unmarshal([]byte(m.Content), &req); err != nil {
			return errorMsg(err)
		}
		out, err := h.s.calcLevel(req)
		if err != nil {
			return errorMsg(err)
		}
		data, err := json.Marshal(out)
		if err != nil {
			return errorMsg(err)
		}
		return model.Msg{Type: typeResult, Content: string(data)}
	case typeEstimatePIP:
		var req model.WellRequest
		if err := json.Unmarshal([]byte(m.Content), &req); err != nil {
			return errorMsg(err)
		}
		params, _ := calculator.FromRequest(req)
		pip := calculator.EstimateIntakePressure(params)
		return model.Msg{Type: typePIP, Content: decimal.NewFromFloat(pip).Round(2).String()}
	default:
		log.WithField("type", m.Type).Warn("no such type")
		return model.Msg{Type: typeError, Content: "no such type: " + m.Type}
	}
}
