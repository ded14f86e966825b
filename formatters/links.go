package formatters

import (
	"maps"
	"regexp"

	"github.com/willibrandon/botlog/core"
)

// anchorTextRegex matches markdown style aliased links such as <https://x.com|x>.
// The first group is the bare URL.
var anchorTextRegex = regexp.MustCompile(`<([^|]+)\|[^>]+>`)

// RemoveAnchorTextFromLinks rewrites every <url|label> link in msg to the bare url.
func RemoveAnchorTextFromLinks(msg string) string {
	return anchorTextRegex.ReplaceAllString(msg, "$1")
}

// LinkAnchorFormatter strips link anchors from the message and from
// top-level string properties, for outputs that cannot render them.
type LinkAnchorFormatter struct{}

// NewLinkAnchorFormatter creates a new link anchor formatter.
func NewLinkAnchorFormatter() *LinkAnchorFormatter {
	return &LinkAnchorFormatter{}
}

// Format returns the event unchanged when it contains no aliased links.
func (f *LinkAnchorFormatter) Format(event *core.LogEvent) *core.LogEvent {
	message := RemoveAnchorTextFromLinks(event.Message)

	var props map[string]any
	for key, value := range event.Properties {
		s, ok := value.(string)
		if !ok {
			continue
		}
		stripped := RemoveAnchorTextFromLinks(s)
		if stripped == s {
			continue
		}
		if props == nil {
			props = make(map[string]any, len(event.Properties))
			maps.Copy(props, event.Properties)
		}
		props[key] = stripped
	}

	if message == event.Message && props == nil {
		return event
	}

	out := *event
	out.Message = message
	if props != nil {
		out.Properties = props
	}
	return &out
}
