package formatters

import (
	"testing"

	"github.com/willibrandon/botlog/core"
)

func TestRemoveAnchorTextFromLinks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"see <https://x.com|x>", "see https://x.com"},
		{"no links here", "no links here"},
		{"<https://a.io|a> and <https://b.io/tx/0x1|tx>", "https://a.io and https://b.io/tx/0x1"},
		{"bare <https://x.com> stays", "bare <https://x.com> stays"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RemoveAnchorTextFromLinks(tt.in); got != tt.want {
				t.Errorf("RemoveAnchorTextFromLinks(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinkAnchorFormatter(t *testing.T) {
	f := NewLinkAnchorFormatter()

	t.Run("nothing to strip", func(t *testing.T) {
		event := &core.LogEvent{Message: "plain", Properties: map[string]any{"n": 1}}
		if got := f.Format(event); got != event {
			t.Error("expected the same event")
		}
	})

	t.Run("message and string properties", func(t *testing.T) {
		props := map[string]any{
			"tx":    "<https://etherscan.io/tx/0xabc|0xabc>",
			"count": 3,
		}
		event := &core.LogEvent{Message: "dispute <https://x.com|here>", Properties: props}

		got := f.Format(event)
		if got.Message != "dispute https://x.com" {
			t.Errorf("unexpected message %q", got.Message)
		}
		if got.Properties["tx"] != "https://etherscan.io/tx/0xabc" {
			t.Errorf("unexpected tx %v", got.Properties["tx"])
		}
		if got.Properties["count"] != 3 {
			t.Errorf("unexpected count %v", got.Properties["count"])
		}
		if props["tx"] != "<https://etherscan.io/tx/0xabc|0xabc>" || event.Message != "dispute <https://x.com|here>" {
			t.Error("original event was modified")
		}
	})
}
