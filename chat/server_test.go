package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, target, contentType, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	out := map[string]any{}
	if rec.Code != http.StatusMethodNotAllowed {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func TestRouterSendAndList(t *testing.T) {
	r, _ := newTestRoom(t, Config{})
	h := NewRouter(r)

	code, out := do(t, h, http.MethodPost, "/send", "application/json", `{"username":"alice","content":"你好"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, float64(0), out["code"])
	require.Equal(t, "发送成功", out["message"])
	data := out["data"].(map[string]any)
	require.Equal(t, "alice", data["username"])
	require.Equal(t, "text", data["type"])

	form := url.Values{"username": {"bob"}, "content": {"hi"}, "type": {"emoji"}}
	code, _ = do(t, h, http.MethodPost, "/send", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusOK, code)

	code, out = do(t, h, http.MethodGet, "/messages", "", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, out["data"], 2)

	_, out = do(t, h, http.MethodGet, "/online", "", "")
	require.Equal(t, []any{"alice", "bob"}, out["data"])
}

func TestRouterValidation(t *testing.T) {
	r, _ := newTestRoom(t, Config{})
	h := NewRouter(r)

	_, out := do(t, h, http.MethodPost, "/send", "application/json", `{"username":"alice"}`)
	require.Equal(t, float64(1), out["code"])

	_, out = do(t, h, http.MethodPost, "/heartbeat", "", "")
	require.Equal(t, float64(1), out["code"])

	code, _ := do(t, h, http.MethodPost, "/send", "application/json", `{broken`)
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodGet, "/send", "", "")
	require.Equal(t, http.StatusMethodNotAllowed, code)
}

func TestRouterHeartbeatAndClear(t *testing.T) {
	r, c := newTestRoom(t, Config{OnlineTimeout: time.Minute})
	h := NewRouter(r)

	_, out := do(t, h, http.MethodPost, "/heartbeat?username=carol", "", "")
	require.Equal(t, float64(0), out["code"])
	_, out = do(t, h, http.MethodGet, "/online", "", "")
	require.Equal(t, []any{"carol"}, out["data"])

	c.t = c.t.Add(2 * time.Minute)
	_, out = do(t, h, http.MethodGet, "/online", "", "")
	require.Equal(t, []any{}, out["data"])

	_, err := r.Send("carol", "bye", "")
	require.NoError(t, err)
	_, out = do(t, h, http.MethodPost, "/clear", "", "")
	require.Equal(t, "清空成功", out["message"])
	require.Empty(t, r.Messages())
}
