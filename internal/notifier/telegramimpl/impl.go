package telegramimpl

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-virality-exporter/internal/domain"
	"github.com/orgball2608/insta-virality-exporter/internal/notifier"
	"github.com/orgball2608/insta-virality-exporter/pkg/config"
	pkgerrors "github.com/orgball2608/insta-virality-exporter/pkg/errors"
	"github.com/orgball2608/insta-virality-exporter/pkg/formatter"
	"github.com/orgball2608/insta-virality-exporter/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New builds the Telegram notifier. An empty token disables notifications
// instead of failing startup.
func New(opts Opts) (notifier.Client, error) {
	log := opts.Logger.WithComponent("Notifier")

	if opts.Config.Telegram.Token == "" {
		log.Info("Telegram token not configured, notifications disabled")
		return &NoopImpl{}, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "error", err)
		return nil, err
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		Config: opts.Config,
	}, nil
}

var _ notifier.Client = (*TelegramImpl)(nil)

// NotifyRunFinished sends the run summary to the configured user.
func (tg *TelegramImpl) NotifyRunFinished(run, previous *domain.ScrapeRun, topPostURL string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("✅ *Scrape finished for @%s*\n\n", formatter.EscapeMarkdownV2(run.Username)))
	sb.WriteString(formatter.EscapeMarkdownV2(followersLine(run, previous)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Posts: %s\n", formatter.EscapeMarkdownV2(formatter.FormatNumber(run.PostCount))))
	if topPostURL != "" {
		sb.WriteString(fmt.Sprintf("\n🔥 [Most viral post](%s)", topPostURL))
	}

	tg.send(sb.String())
}

// followersLine renders the follower count with the delta against the
// previous recorded run when both counts are known.
func followersLine(run, previous *domain.ScrapeRun) string {
	if run.Followers == nil {
		return "Followers: unknown"
	}

	line := fmt.Sprintf("Followers: %s", formatter.FormatNumber(*run.Followers))
	if previous != nil && previous.Followers != nil {
		line += fmt.Sprintf(" (%s since last run)", formatter.FormatSigned(*run.Followers-*previous.Followers))
	}
	return line
}

// NotifyRunFailed reports a failed scrape to the configured user.
func (tg *TelegramImpl) NotifyRunFailed(username string, err error) {
	tg.send(fmt.Sprintf("❌ *Scrape failed for @%s*\n\n%s",
		formatter.EscapeMarkdownV2(username),
		formatter.EscapeMarkdownV2(failureReason(err)),
	))
}

// failureReason turns the tagged service-edge errors into a short actionable
// message; anything untagged is reported verbatim.
func failureReason(err error) string {
	switch {
	case pkgerrors.IsNotFound(err):
		return "The profile could not be resolved. Check the handle."
	case pkgerrors.IsUnauthorized(err):
		return "Instagram rejected the session. A fresh login is required."
	case pkgerrors.IsServiceUnavailable(err):
		return "Instagram did not serve the feed. The next run will retry."
	}
	return err.Error()
}

func (tg *TelegramImpl) send(text string) {
	msg := tgbotapi.NewMessage(tg.Config.Telegram.User, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to user",
			"userID", tg.Config.Telegram.User,
			"error", err)
		return
	}

	tg.Logger.Info("Notification sent", "userID", tg.Config.Telegram.User)
}

// NoopImpl is the notifier used when Telegram is not configured.
type NoopImpl struct{}

var _ notifier.Client = (*NoopImpl)(nil)

func (*NoopImpl) NotifyRunFinished(_, _ *domain.ScrapeRun, _ string) {}
func (*NoopImpl) NotifyRunFailed(string, error)                      {}
