// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"fmt"

	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/validate"
)

// # Presentation

// Mode selects the reply shape.
type Mode string

const (
	// ModeRich renders an embed: image, linked title, Title/Alt fields, footer.
	ModeRich Mode = "rich"

	// ModePlain renders the bare image URL.
	ModePlain Mode = "plain"
)

// ParseMode turns a configuration, flag or query value into a [Mode].
// Anything but "rich" or "plain" is a VALIDATION_ERROR naming field.
func ParseMode(field, value string) (Mode, error) {
	v := &validate.Validator{}
	if err := v.OneOf(field, value, string(ModeRich), string(ModePlain)).Err(); err != nil {
		return "", err
	}
	return Mode(value), nil
}

// footerDateLayout is DD/MM/YYYY.
const footerDateLayout = "02/01/2006"

// Payload is what an entry point transmits back to the chat platform.
//
// Exactly one of Content or Embed is set.
type Payload struct {
	Content string `json:"content,omitempty"`
	Embed   *Embed `json:"embed,omitempty"`
}

// IsText reports whether the payload is text-only.
func (p Payload) IsText() bool { return p.Embed == nil }

// Embed is a platform-neutral rich message.
type Embed struct {
	Title    string       `json:"title"`
	URL      string       `json:"url"`
	ImageURL string       `json:"image_url"`
	Fields   []EmbedField `json:"fields"`
	Footer   string       `json:"footer"`
}

// EmbedField is one labeled value of an [Embed].
type EmbedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Render maps a resolution outcome to a [Payload].
//
// A nil comic always renders the text "Comic not found." regardless of mode.
// Unknown modes render as [ModeRich].
func Render(mode Mode, comic *Comic) Payload {
	if comic == nil {
		return Payload{Content: constants.ReplyNotFound}
	}

	if mode == ModePlain {
		return Payload{Content: comic.ImageURL}
	}

	return Payload{
		Embed: &Embed{
			Title:    fmt.Sprintf("xkcd n°%d", comic.Num),
			URL:      comic.Link,
			ImageURL: comic.ImageURL,
			Fields: []EmbedField{
				{Name: "Title", Value: comic.Title},
				{Name: "Alt", Value: comic.Alt},
			},
			Footer: "From " + comic.Date.Format(footerDateLayout),
		},
	}
}
