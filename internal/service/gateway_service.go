package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/guestbonus/bonus-bot/internal/models"
	"github.com/guestbonus/bonus-bot/internal/phone"
	"github.com/guestbonus/bonus-bot/internal/repository"
	"github.com/guestbonus/bonus-bot/internal/telegram"
)

// ErrInvalidEvent marks a webhook payload that is structurally unusable:
// no message, no contact, or no phone number. The handler maps it to a 400.
var ErrInvalidEvent = errors.New("invalid contact event")

// Fixed reply texts. Business rejections reuse these verbatim so tests and
// monitoring can match on them.
const (
	ContactButtonText = "Share phone number"

	StartMessage         = "Tap the Share phone number button below to check your bonus balance."
	NotYourNumberMessage = "You can only check information for your own phone number."
	NotFoundMessage      = "No bonuses were found for this phone number."

	usageCommandContact = "contact"
)

type gatewayService struct {
	repo   repository.Repository
	bonus  BonusService
	logger *zap.Logger
}

// NewGatewayService creates the webhook gateway. It owns the per-request
// state machine: validate, check ownership, log usage, look up, format.
func NewGatewayService(repo repository.Repository, bonus BonusService, logger *zap.Logger) GatewayService {
	return &gatewayService{
		repo:   repo,
		bonus:  bonus,
		logger: logger,
	}
}

func (s *gatewayService) HandleContactEvent(ctx context.Context, update *telegram.Update) (string, error) {
	if update == nil || update.Message == nil {
		return "", fmt.Errorf("%w: missing message", ErrInvalidEvent)
	}

	msg := update.Message
	if msg.Contact == nil {
		return "", fmt.Errorf("%w: missing contact", ErrInvalidEvent)
	}
	if msg.Contact.PhoneNumber == "" {
		return "", fmt.Errorf("%w: missing phone number", ErrInvalidEvent)
	}

	// Ownership rule: a contact card claiming another user's number is a
	// business rejection, not an error, and must never reach storage.
	if msg.From != nil && msg.Contact.UserID != 0 && msg.Contact.UserID != msg.From.ID {
		s.logger.Info("Rejected contact not owned by sender",
			zap.Int64("sender_id", msg.From.ID),
			zap.Int64("contact_owner_id", msg.Contact.UserID))
		return NotYourNumberMessage, nil
	}

	var senderID int64
	if msg.From != nil {
		senderID = msg.From.ID
	}

	canonical := phone.Normalize(msg.Contact.PhoneNumber)
	masked := phone.Mask(canonical)
	if masked == "" {
		masked = phone.Mask(msg.Contact.PhoneNumber)
	}

	s.logger.Info("Received contact",
		zap.Int64("user_id", senderID),
		zap.String("phone", masked))

	// Best-effort usage log: failure is recorded and the bonus flow continues.
	entry := models.UsageLogEntry{
		UserID:    senderID,
		Phone:     masked,
		Command:   usageCommandContact,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Guest().LogUsage(ctx, entry); err != nil {
		s.logger.Error("Failed to log usage stat",
			zap.Int64("user_id", senderID),
			zap.Error(err))
	}

	record, err := s.repo.Guest().FetchByPhone(ctx, canonical)
	if err != nil {
		// Storage failures degrade to the not-found reply; internal detail
		// stays server-side.
		s.logger.Error("Failed to fetch bonus info",
			zap.Int64("user_id", senderID),
			zap.String("phone", masked),
			zap.Error(err))
		return NotFoundMessage, nil
	}

	bonus := s.bonus.Resolve(record)
	if bonus == nil {
		return NotFoundMessage, nil
	}

	reply := fmt.Sprintf("%s, you have accumulated %d bonus, loyalty level %s.",
		bonus.FirstName, bonus.Amount, bonus.LoyaltyLevel)
	if bonus.Amount > 0 {
		reply += fmt.Sprintf(" Valid until %s.", bonus.ExpireDate)
	}

	return reply, nil
}

func (s *gatewayService) HandleStartCommand() (string, *telegram.ReplyKeyboardMarkup) {
	keyboard := &telegram.ReplyKeyboardMarkup{
		Keyboard: [][]telegram.KeyboardButton{
			{
				{Text: ContactButtonText, RequestContact: true},
			},
		},
		ResizeKeyboard: true,
	}
	return StartMessage, keyboard
}
