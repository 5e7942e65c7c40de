// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/taibuivan/xkcdbot/internal/core/comic"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/pkg/pointer"
	"github.com/taibuivan/xkcdbot/pkg/slice"
)

// zeroWidthSpace stands in for empty embed values, which Discord rejects.
const zeroWidthSpace = "\u200b"

// messageSend converts a payload into a reply to the message at ref.
func messageSend(payload comic.Payload, ref *discordgo.MessageReference) *discordgo.MessageSend {
	send := &discordgo.MessageSend{
		Content:         payload.Content,
		Reference:       ref,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}
	if payload.Embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{messageEmbed(payload.Embed)}
	}
	return send
}

// webhookEdit converts a payload into the edit that completes a deferred
// interaction response. Both pointers are always set so a retried edit
// replaces whatever was there.
func webhookEdit(payload comic.Payload) *discordgo.WebhookEdit {
	embeds := []*discordgo.MessageEmbed{}
	if payload.Embed != nil {
		embeds = append(embeds, messageEmbed(payload.Embed))
	}
	return &discordgo.WebhookEdit{
		Content: pointer.To(payload.Content),
		Embeds:  &embeds,
	}
}

// messageEmbed maps the neutral embed onto Discord's, clamped to its limits.
func messageEmbed(embed *comic.Embed) *discordgo.MessageEmbed {
	fields := slice.Map(embed.Fields, func(field comic.EmbedField) *discordgo.MessageEmbedField {
		return &discordgo.MessageEmbedField{
			Name:  field.Name,
			Value: clamp(field.Value, constants.EmbedFieldMaxRunes),
		}
	})

	return &discordgo.MessageEmbed{
		Type:   discordgo.EmbedTypeRich,
		Title:  clamp(embed.Title, constants.EmbedTitleMaxRunes),
		URL:    embed.URL,
		Color:  constants.EmbedColor,
		Image:  &discordgo.MessageEmbedImage{URL: embed.ImageURL},
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: embed.Footer},
	}
}

// clamp cuts s to max runes, ending with an ellipsis when cut, and replaces
// an empty s with a zero-width space.
func clamp(s string, max int) string {
	if s == "" {
		return zeroWidthSpace
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
