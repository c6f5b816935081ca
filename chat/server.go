package chat

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/heweile/MoviePilot-Plugins/logger"
)

// Response is the envelope every endpoint answers with. Code is 0 on
// success and 1 on failure.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type request struct {
	Username string `json:"username"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

// NewRouter exposes room over HTTP:
//
//	GET  /messages
//	POST /send       username, content, type
//	GET  /online
//	POST /heartbeat  username
//	POST /clear
//
// Parameters are read from a JSON body or from form/query values.
func NewRouter(room *Room) *mux.Router {
	h := &handler{room: room}
	r := mux.NewRouter()
	r.HandleFunc("/messages", h.messages).Methods(http.MethodGet)
	r.HandleFunc("/send", h.send).Methods(http.MethodPost)
	r.HandleFunc("/online", h.online).Methods(http.MethodGet)
	r.HandleFunc("/heartbeat", h.heartbeat).Methods(http.MethodPost)
	r.HandleFunc("/clear", h.clear).Methods(http.MethodPost)
	return r
}

type handler struct {
	room *Room
}

func (h *handler) messages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Message: "操作成功", Data: h.room.Messages()})
}

func (h *handler) send(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Code: 1, Message: err.Error()})
		return
	}
	msg, err := h.room.Send(req.Username, req.Content, req.Type)
	switch {
	case errors.Is(err, ErrMissingUsername), errors.Is(err, ErrMissingContent):
		writeJSON(w, http.StatusOK, Response{Code: 1, Message: "用户名和消息内容不能为空！"})
	case err != nil:
		logger.Error("Failed to send message", "username", req.Username, "error", err)
		writeJSON(w, http.StatusInternalServerError, Response{Code: 1, Message: err.Error()})
	default:
		writeJSON(w, http.StatusOK, Response{Message: "发送成功", Data: msg})
	}
}

func (h *handler) online(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Message: "操作成功", Data: h.room.Online()})
}

func (h *handler) heartbeat(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Code: 1, Message: err.Error()})
		return
	}
	if err := h.room.Heartbeat(req.Username); err != nil {
		writeJSON(w, http.StatusOK, Response{Code: 1, Message: "用户名不能为空！"})
		return
	}
	writeJSON(w, http.StatusOK, Response{Message: "操作成功"})
}

func (h *handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.room.Clear(); err != nil {
		logger.Error("Failed to clear messages", "error", err)
		writeJSON(w, http.StatusInternalServerError, Response{Code: 1, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, Response{Message: "清空成功"})
}

func decodeRequest(r *http.Request) (request, error) {
	req := request{}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Username = r.FormValue("username")
	req.Content = r.FormValue("content")
	req.Type = r.FormValue("type")
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		logger.Error("Failed to write response", "error", err)
	}
}
