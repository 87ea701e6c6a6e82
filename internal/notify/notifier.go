package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/logger"
)

// ErrInvalidWebhookURL is returned for URLs without an id and token
var ErrInvalidWebhookURL = errors.New(ErrMsgInvalidWebhookURL)

// WebhookExecutor is the subset of *discordgo.Session used to post messages.
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts an embed to a Discord webhook for every newly added banner.
type Notifier struct {
	session  WebhookExecutor
	id       string
	token    string
	username string
}

var gameTitles = map[domain.Game]string{
	domain.GameGenshin:  "Genshin Impact",
	domain.GameStarRail: "Honkai: Star Rail",
	domain.GameZenless:  "Zenless Zone Zero",
}

var gameColors = map[domain.Game]int{
	domain.GameGenshin:  ColorGenshin,
	domain.GameStarRail: ColorStarRail,
	domain.GameZenless:  ColorZenless,
}

// New creates a Notifier for the webhook URL using an unauthenticated session.
func New(webhookURL string) (*Notifier, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	return NewWithExecutor(session, webhookURL)
}

// NewWithExecutor creates a Notifier posting through exec.
func NewWithExecutor(exec WebhookExecutor, webhookURL string) (*Notifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	return &Notifier{session: exec, id: id, token: token, username: DefaultUsername}, nil
}

// ParseWebhookURL extracts the webhook id and token.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" {
		return "", "", ErrInvalidWebhookURL
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part == webhookPathMarker && i+2 < len(parts) {
			id, token = parts[i+1], parts[i+2]
			break
		}
	}
	if id == "" || token == "" {
		return "", "", ErrInvalidWebhookURL
	}
	return id, token, nil
}

// Register subscribes the notifier to banner additions.
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.BannerAdded, n.HandleBannerAdded)
}

// HandleBannerAdded posts one embed. Errors are returned so a resilient
// publisher can retry them.
func (n *Notifier) HandleBannerAdded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.BannerPayloadV1](evt.Payload)
	if err != nil {
		return err
	}

	params := &discordgo.WebhookParams{
		Username: n.username,
		Embeds:   []*discordgo.MessageEmbed{BuildEmbed(payload)},
	}
	if _, err := n.session.WebhookExecute(n.id, n.token, false, params); err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotificationFailed, "banner_id", payload.BannerID, "error", err)
		return fmt.Errorf("discord webhook: %w", err)
	}
	logger.FromContext(ctx).Debug(LogMsgNotificationSent, "banner_id", payload.BannerID)
	return nil
}

// BuildEmbed renders a banner as a Discord embed.
func BuildEmbed(p event.BannerPayloadV1) *discordgo.MessageEmbed {
	title := cases.Title(language.English)
	gameTitle, ok := gameTitles[p.Game]
	if !ok {
		gameTitle = title.String(string(p.Game))
	}
	color, ok := gameColors[p.Game]
	if !ok {
		color = ColorDefault
	}

	embed := &discordgo.MessageEmbed{
		Title:       p.Record.DisplayName(),
		Description: fmt.Sprintf(DescriptionFormat, title.String(string(p.Bucket)), gameTitle),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: FieldNameUprate5, Value: itemList(p.Record.Uprate5)},
			{Name: FieldNameUprate4, Value: itemList(p.Record.Uprate4)},
			{Name: FieldNameStart, Value: windowText(p.Record.StartTime), Inline: true},
			{Name: FieldNameEnd, Value: windowText(p.Record.EndTime), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf(FooterPattern, gameTitle, p.BannerID),
		},
	}
	if p.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: p.ImageURL}
	}
	return embed
}

func itemList(items []domain.ItemRef) string {
	if len(items) == 0 {
		return FieldValueNone
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	text := strings.Join(names, ", ")
	if len(text) > MaxFieldLength {
		text = text[:MaxFieldLength-3] + "..."
	}
	return text
}

func windowText(w domain.TimeWindow) string {
	if w.IsServerTime {
		return w.Time + ServerTimeSuffix
	}
	return w.Time
}
