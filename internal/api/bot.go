package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"face-diff-bot/internal/container"
	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/report"
)

const (
	msgStart = `👋 Hi! I compare two photos of your face and tell you which features have changed.

📋 Commands:
/baseline — save a reference photo
/compare — compare a new photo with the reference
/help — help
/cancel — cancel the current operation`

	msgHelp = `ℹ️ How it works:

1️⃣ Send /baseline and a photo of your face — it becomes the reference
2️⃣ Later send /compare and a new photo
3️⃣ You get a list of changed features and the photo with landmarks

💡 Tips:
• Face the camera, keep the same distance and angle
• Use even lighting
• Only one face in the frame

📋 Commands:
/baseline — save a reference photo
/compare — compare with the reference
/cancel — cancel the operation`

	msgAwaitingBaseline = "📸 Send a photo of your face to use as the reference."
	msgAwaitingCurrent  = "📸 Send a new photo to compare with the reference."
	msgNoBaseline       = "⚠️ There is no reference photo yet. Send /baseline first."
	msgBaselineSaved    = "✅ Reference saved. Send /compare whenever you want to check for changes."
	msgCancelled        = "❌ Operation cancelled."
	msgSendCommand      = "📸 Send /baseline or /compare first, then the photo."
	msgUnknownCommand   = "❓ Unknown command. Use /help."
	msgProcessing       = "⏳ Processing the photo..."
	msgNoFace           = "🙈 No face found in the photo. Try another one."
	msgProcessingError  = "⚠️ Could not process the photo. Please try another one."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	services *container.Container
	log      *logrus.Logger
	http     *http.Client
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container, log *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.WithField("account", api.Self.UserName).Info("authorized")

	return &Bot{
		api:      api,
		services: services,
		log:      log,
		http:     &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.services.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.log.WithError(err).Error("get user")
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendCommand)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	users := b.services.UserService

	switch msg.Command() {
	case "start":
		b.mustState(users.Cancel(ctx, user.ID, user.ChatID))
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "baseline":
		b.mustState(users.BeginBaseline(ctx, user.ID, user.ChatID))
		b.sendMessage(msg.Chat.ID, msgAwaitingBaseline)

	case "compare":
		has, err := b.services.ComparisonService.HasBaseline(ctx, user.ID)
		if err != nil {
			b.log.WithError(err).Error("check baseline")
			b.sendMessage(msg.Chat.ID, msgProcessingError)
			return
		}
		if !has {
			b.sendMessage(msg.Chat.ID, msgNoBaseline)
			return
		}
		b.mustState(users.BeginCompare(ctx, user.ID, user.ChatID))
		b.sendMessage(msg.Chat.ID, msgAwaitingCurrent)

	case "cancel":
		b.mustState(users.Cancel(ctx, user.ID, user.ChatID))
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto обрабатывает входящее фото в зависимости от состояния диалога
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	state := user.State
	if state != entity.StateAwaitingBaselinePhoto && state != entity.StateAwaitingCurrentPhoto {
		b.sendMessage(msg.Chat.ID, msgSendCommand)
		return
	}

	b.mustState(b.services.UserService.SetState(ctx, user.ID, user.ChatID, entity.StateProcessing))
	b.sendMessage(msg.Chat.ID, msgProcessing)

	fields := logrus.Fields{"user_id": user.ID, "chat_id": user.ChatID}

	// Берём файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]
	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.log.WithFields(fields).WithError(err).Error("download photo")
		b.fail(ctx, msg.Chat.ID, user, state, err)
		return
	}

	switch state {
	case entity.StateAwaitingBaselinePhoto:
		out, err := b.services.ComparisonService.AcceptBaselinePhoto(ctx, user.ID, user.ChatID, imageData)
		if err != nil {
			b.log.WithFields(fields).WithError(err).Warn("baseline rejected")
			b.fail(ctx, msg.Chat.ID, user, state, err)
			return
		}
		fields["baseline_id"] = out.Baseline.ID
		b.log.WithFields(fields).Info("baseline saved")
		b.sendPhotoOrText(msg.Chat.ID, out.Highlighted, msgBaselineSaved)

	case entity.StateAwaitingCurrentPhoto:
		out, err := b.services.ComparisonService.Compare(ctx, user.ID, user.ChatID, imageData)
		if err != nil {
			b.log.WithFields(fields).WithError(err).Warn("comparison failed")
			b.fail(ctx, msg.Chat.ID, user, state, err)
			return
		}
		fields["comparison_id"] = out.Result.ID
		fields["significant"] = len(out.Result.Significant)
		b.log.WithFields(fields).Info("comparison done")
		b.sendPhotoOrText(msg.Chat.ID, out.Highlighted, report.Summary(out.Result))
	}
}

// fail сообщает об ошибке и возвращает пользователя в предыдущее состояние, чтобы можно было прислать другое фото
func (b *Bot) fail(ctx context.Context, chatID int64, user *entity.User, state entity.UserState, err error) {
	text, toMenu := failureText(err)
	if toMenu {
		state = entity.StateMainMenu
	}
	b.mustState(b.services.UserService.SetState(ctx, user.ID, user.ChatID, state))
	b.sendMessage(chatID, text)
}

// failureText подбирает сообщение для пользователя; true — диалог нужно вернуть в меню
func failureText(err error) (string, bool) {
	switch {
	case errors.Is(err, entity.ErrNoFaceFound), errors.Is(err, entity.ErrMissingLandmark):
		return msgNoFace, false
	case errors.Is(err, entity.ErrBaselineNotFound):
		return msgNoBaseline, true
	default:
		return msgProcessingError, false
	}
}

func (b *Bot) mustState(_ *entity.User, err error) {
	if err != nil {
		b.log.WithError(err).Error("update user state")
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendPhotoOrText отправляет фото с подписью или только текст, если картинки нет
func (b *Bot) sendPhotoOrText(chatID int64, photo []byte, caption string) {
	if len(photo) == 0 {
		b.sendMessage(chatID, caption)
		return
	}

	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "landmarks.jpg", Bytes: photo})
	if len(caption) <= 1024 {
		msg.Caption = caption
	}
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).Error("send photo")
		b.sendMessage(chatID, caption)
		return
	}
	if msg.Caption == "" {
		b.sendMessage(chatID, caption)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).Error("send message")
	}
}
