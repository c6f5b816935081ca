package manifest

// Manifest is the plugin descriptor MoviePilot reads from package.json.
// Field order matches the order keys are written in.
type Manifest struct {
	Name        string            `json:"name"`
	ID          string            `json:"id"`
	Author      string            `json:"author"`
	Version     string            `json:"version"`
	Level       int               `json:"level"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	Main        string            `json:"main"`
	Reload      bool              `json:"reload"`
	Installed   bool              `json:"installed"`
	Scope       []string          `json:"scope"`
	History     map[string]string `json:"history"`
}

// Chatroom returns the descriptor for the chatroom plugin.
func Chatroom() Manifest {
	return Manifest{
		Name:        "聊天室",
		ID:          "chatroom",
		Author:      "heweile",
		Version:     "1.0",
		Level:       1,
		Description: "MoviePilot在线聊天室，支持实时聊天、表情和在线状态显示",
		Icon:        "chat_bubble",
		Main:        "chatroom",
		Reload:      true,
		Installed:   true,
		Scope:       []string{},
		History: map[string]string{
			"v1.0": "首次发布，支持在线聊天功能，表情符号，在线状态和链接自动识别",
		},
	}
}

// Diff lists the JSON names of the fields that differ between want and got.
func Diff(want, got Manifest) []string {
	out := []string{}
	add := func(name string, same bool) {
		if !same {
			out = append(out, name)
		}
	}
	add("name", want.Name == got.Name)
	add("id", want.ID == got.ID)
	add("author", want.Author == got.Author)
	add("version", want.Version == got.Version)
	add("level", want.Level == got.Level)
	add("description", want.Description == got.Description)
	add("icon", want.Icon == got.Icon)
	add("main", want.Main == got.Main)
	add("reload", want.Reload == got.Reload)
	add("installed", want.Installed == got.Installed)
	add("scope", equalStrings(want.Scope, got.Scope))
	add("history", equalHistory(want.History, got.History))
	return out
}

// A missing or null list never comes out of Encode, so it differs from [].
func equalStrings(a, b []string) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalHistory(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}
