// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/taibuivan/xkcdbot/internal/core/comic"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/pkg/pointer"
)

// Resolver is the slice of [comic.Service] the entry points need.
type Resolver interface {
	Resolve(ctx context.Context, ref comic.Reference) (*comic.Comic, error)
}

// Commands is the platform-neutral command layer shared by the prefix and
// slash entry points. Both go through [Commands.Comic]; neither resolves on
// its own.
type Commands struct {
	resolver   Resolver
	prefix     string
	prefixMode comic.Mode
}

// NewCommands builds the command layer.
func NewCommands(resolver Resolver, prefix string, prefixMode comic.Mode) *Commands {
	if prefix == "" {
		prefix = constants.DefaultCommandPrefix
	}
	if prefixMode == "" {
		prefixMode = comic.ModeRich
	}
	return &Commands{resolver: resolver, prefix: prefix, prefixMode: prefixMode}
}

// Comic resolves ref and renders it. Resolution errors were already logged
// with their code by the resolver; here they all become the "not found" reply.
func (commands *Commands) Comic(ctx context.Context, ref comic.Reference, mode comic.Mode) comic.Payload {
	resolved, err := commands.resolver.Resolve(ctx, ref)
	if err != nil {
		resolved = nil
	}
	return comic.Render(mode, resolved)
}

// ParseMessage splits "~xkcd 353" into ("xkcd", ["353"]). ok is false when
// the content does not start with the prefix or names no command.
func (commands *Commands) ParseMessage(content string) (name string, args []string, ok bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, commands.prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, commands.prefix))
	if len(fields) == 0 || strings.HasPrefix(content, commands.prefix+" ") {
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}

// HandleMessage runs a prefix command. handled is false for anything that is
// not one of our commands, in which case nothing should be sent.
func (commands *Commands) HandleMessage(ctx context.Context, content string) (payload comic.Payload, handled bool) {
	name, args, ok := commands.ParseMessage(content)
	if !ok {
		return comic.Payload{}, false
	}

	switch name {
	case constants.CommandPing:
		return comic.Payload{Content: constants.ReplyPong}, true
	case constants.CommandXKCD:
		ref := comic.Latest()
		if len(args) > 0 {
			ref = comic.ParseReference(args[0])
		}
		return commands.Comic(ctx, ref, commands.prefixMode), true
	default:
		return comic.Payload{}, false
	}
}

// HandleSlash runs a slash command. Slash replies are always rich.
func (commands *Commands) HandleSlash(ctx context.Context, name string, number *int64) (payload comic.Payload, handled bool) {
	switch name {
	case constants.CommandPing:
		return comic.Payload{Content: constants.ReplyPong}, true
	case constants.CommandXKCD:
		return commands.Comic(ctx, comic.ReferenceFromOption(number), comic.ModeRich), true
	default:
		return comic.Payload{}, false
	}
}

// SlashCommands declares the application command schema.
func SlashCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        constants.CommandXKCD,
			Description: "Show an xkcd comic (the latest one when no number is given)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        constants.OptionNumber,
					Description: "Comic number",
					Required:    false,
					MinValue:    pointer.To(1.0),
				},
			},
		},
		{
			Name:        constants.CommandPing,
			Description: "Check that the bot is alive",
		},
	}
}
