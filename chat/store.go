package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/heweile/MoviePilot-Plugins/logger"
	"github.com/heweile/MoviePilot-Plugins/util"
	"sigs.k8s.io/yaml"
)

// Load replaces the in-memory log with the one saved at DataPath. A missing
// file gives an empty log. So does an unreadable one, after logging why.
func (r *Room) Load() error {
	if r.cfg.DataPath == "" {
		return nil
	}
	data, err := os.ReadFile(r.cfg.DataPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read chat data: %w", err)
	}

	messages := []Message{}
	if err == nil {
		if perr := yaml.Unmarshal(data, &messages); perr != nil {
			logger.Error("Failed to load chat messages", "path", r.cfg.DataPath, "error", perr)
			messages = []Message{}
		}
		if messages == nil {
			messages = []Message{}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = messages
	r.lastID = 0
	for _, m := range messages {
		if m.ID > r.lastID {
			r.lastID = m.ID
		}
	}
	logger.Debug("Loaded chat messages", "path", r.cfg.DataPath, "count", len(messages))
	return nil
}

// Save writes the log to DataPath.
func (r *Room) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save()
}

func (r *Room) save() error {
	if r.cfg.DataPath == "" {
		return nil
	}
	data, err := encodeMessages(r.messages)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(r.cfg.DataPath, data, 0644); err != nil {
		return fmt.Errorf("failed to save chat messages: %w", err)
	}
	return nil
}

func encodeMessages(messages []Message) ([]byte, error) {
	if messages == nil {
		messages = []Message{}
	}
	buf := bytes.NewBuffer([]byte{})
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(messages); err != nil {
		return nil, fmt.Errorf("unable to encode chat messages: %w", err)
	}
	return buf.Bytes(), nil
}
