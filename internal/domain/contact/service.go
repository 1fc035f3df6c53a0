package contact

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxMessageLength = 5000

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Submit stores a message from the public contact form.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Message, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	body := strings.TrimSpace(in.Message)
	if name == "" || email == "" || body == "" {
		return Message{}, ErrFieldsRequired
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return Message{}, ErrInvalidEmail
	}
	if utf8.RuneCountInString(body) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}

	return s.Store.Create(ctx, Message{Name: name, Email: email, Message: body})
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.Store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Message, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Message{}, ErrMessageNotFound
	}
	return s.Store.Get(ctx, id)
}
