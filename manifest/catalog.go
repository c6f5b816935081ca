package manifest

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPlugin = errors.New("unknown plugin")

// DefaultPlugin is the id written when none is given.
const DefaultPlugin = "chatroom"

var catalog = map[string]func() Manifest{
	"chatroom": Chatroom,
	"chat_center": func() Manifest {
		return chatPlugin("chat_center", "聊天中心", "1.2", "chatroom.svg")
	},
	"chatroom_enhanced": func() Manifest {
		return chatPlugin("chatroom_enhanced", "聊天中心增强版", "1.3", "chat")
	},
}

// chat_center and chatroom_enhanced share everything but their name, version and icon.
func chatPlugin(id, name, version, icon string) Manifest {
	desc := "多功能聊天室，支持实时交流、表情和在线状态显示"
	return Manifest{
		Name:        name,
		ID:          id,
		Author:      "heweile",
		Version:     version,
		Level:       1,
		Description: desc,
		Icon:        icon,
		Main:        id,
		Reload:      true,
		Installed:   true,
		Scope:       []string{},
		History:     map[string]string{"v" + version: desc},
	}
}

// Lookup returns the descriptor registered under id.
func Lookup(id string) (Manifest, error) {
	f, ok := catalog[id]
	if !ok {
		return Manifest{}, fmt.Errorf("%w: %s", ErrUnknownPlugin, id)
	}
	return f(), nil
}

// IDs returns the registered plugin ids in sorted order.
func IDs() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
