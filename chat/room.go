package chat

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/heweile/MoviePilot-Plugins/logger"
)

const (
	DefaultMaxMessages   = 100
	DefaultOnlineTimeout = 300 * time.Second
	DataFileName         = "chat_center_data.json"

	// TimeLayout is how Message.Time is rendered.
	TimeLayout = "2006-01-02 15:04:05"
)

var (
	ErrMissingUsername = errors.New("username must not be empty")
	ErrMissingContent  = errors.New("content must not be empty")
)

type Message struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Content  string `json:"content"`
	Time     string `json:"time"`
	Type     string `json:"type"`
}

// Config controls a Room. Zero values select the defaults. An empty
// DataPath keeps the room in memory only.
type Config struct {
	DataPath      string
	MaxMessages   int
	OnlineTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxMessages <= 0 {
		if c.MaxMessages < 0 {
			logger.Warn("Ignoring max messages", "value", c.MaxMessages, "default", DefaultMaxMessages)
		}
		c.MaxMessages = DefaultMaxMessages
	}
	if c.OnlineTimeout <= 0 {
		if c.OnlineTimeout < 0 {
			logger.Warn("Ignoring online timeout", "value", c.OnlineTimeout, "default", DefaultOnlineTimeout)
		}
		c.OnlineTimeout = DefaultOnlineTimeout
	}
	return c
}

// Room holds the message log and the set of users seen recently. It is
// safe for concurrent use.
type Room struct {
	mu       sync.Mutex
	cfg      Config
	messages []Message
	online   map[string]time.Time
	lastID   int64
	now      func() time.Time
}

func NewRoom(cfg Config) *Room {
	return &Room{
		cfg:      cfg.withDefaults(),
		messages: []Message{},
		online:   map[string]time.Time{},
		now:      time.Now,
	}
}

// Open creates a room and loads any messages saved at cfg.DataPath,
// creating the parent directory if needed.
func Open(cfg Config) (*Room, error) {
	r := NewRoom(cfg)
	if r.cfg.DataPath == "" {
		return r, nil
	}
	if err := os.MkdirAll(filepath.Dir(r.cfg.DataPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create chat data directory: %w", err)
	}
	if err := r.Load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Room) Config() Config {
	return r.cfg
}

// Send appends a message from username and marks them online. The log is
// trimmed to the newest MaxMessages entries and saved.
func (r *Room) Send(username, content, msgType string) (Message, error) {
	if username == "" {
		return Message{}, ErrMissingUsername
	}
	if content == "" {
		return Message{}, ErrMissingContent
	}
	if msgType == "" {
		msgType = "text"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.online[username] = now

	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	msg := Message{
		ID:       id,
		Username: username,
		Content:  content,
		Time:     now.Format(TimeLayout),
		Type:     msgType,
	}
	r.messages = append(r.messages, msg)
	if over := len(r.messages) - r.cfg.MaxMessages; over > 0 {
		r.messages = append([]Message{}, r.messages[over:]...)
	}
	return msg, r.save()
}

// Messages returns a copy of the log, oldest first.
func (r *Room) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message{}, r.messages...)
}

func (r *Room) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = []Message{}
	return r.save()
}

// Heartbeat marks username as active now.
func (r *Room) Heartbeat(username string) error {
	if username == "" {
		return ErrMissingUsername
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.online[username] = r.now()
	return nil
}

// Online drops users idle for longer than OnlineTimeout and returns the
// rest sorted by name.
func (r *Room) Online() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	out := make([]string, 0, len(r.online))
	for name, last := range r.online {
		if now.Sub(last) > r.cfg.OnlineTimeout {
			delete(r.online, name)
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
