package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// ChannelNotifier delivers debate announcements through the Discord
// session
type ChannelNotifier struct {
	session *discordgo.Session
}

// NewChannelNotifier creates a notifier over the given session
func NewChannelNotifier(session *discordgo.Session) *ChannelNotifier {
	return &ChannelNotifier{session: session}
}

// Send posts a message to the channel
func (n *ChannelNotifier) Send(ctx context.Context, channelID string, content string) error {
	_, err := n.session.ChannelMessageSend(channelID, content)
	return err
}
