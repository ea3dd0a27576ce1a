package chat

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/minichat/internal/common"
	"github.com/dmitrijs2005/minichat/internal/logging"
	"github.com/dmitrijs2005/minichat/internal/server/config"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Service is the chat facade. It owns the registry and the log and checks
// every request against the token it carries.
type Service struct {
	registry     *Registry
	log          *Log
	recorder     Recorder
	logger       logging.Logger
	streamBuffer int
}

// NewService creates an empty chat. A nil Recorder disables reporting.
func NewService(cfg *config.Config, rec Recorder, l logging.Logger) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}

	buffer := cfg.StreamBuffer
	if buffer <= 0 {
		buffer = common.DefaultStreamBuffer
	}

	return &Service{
		registry:     NewRegistry(),
		log:          NewLog(),
		recorder:     rec,
		logger:       l.With("module", "chat"),
		streamBuffer: buffer,
	}
}

// Join registers a new member. A taken username yields Accepted=false and a
// nil error; a missing username or password yields ErrInvalidMember.
func (s *Service) Join(ctx context.Context, username, password string) (JoinResult, error) {
	m := Member{Username: username, Password: password}
	if err := validate.Struct(m); err != nil {
		s.recorder.Rejected("join", ReasonInvalid)
		return JoinResult{}, fmt.Errorf("%w: %v", common.ErrInvalidMember, err)
	}

	token, ok := s.registry.Join(m)
	s.recorder.Joined(ok)
	if !ok {
		s.logger.Info(ctx, "join denied", "username", username)
		return JoinResult{}, nil
	}

	s.recorder.Size(s.registry.Len(), s.log.Len())
	s.logger.Info(ctx, "member joined", "username", username, "token", token)
	return JoinResult{Token: token, Accepted: true}, nil
}

// Post appends text on behalf of the member holding token and returns its
// sequence number. The length limit is checked before the token.
func (s *Service) Post(ctx context.Context, token Token, text string) (uint64, error) {
	if len(text) > common.MaxMessageLen {
		s.recorder.Rejected("post", ReasonTooLong)
		return 0, common.ErrMessageTooLong
	}

	username, ok := s.registry.ResolveUsername(token)
	if !ok {
		s.recorder.Rejected("post", ReasonUnauthorized)
		return 0, common.ErrorUnauthorized
	}

	seq := s.log.Append(username, text)
	s.recorder.Posted()
	s.recorder.Size(s.registry.Len(), s.log.Len())
	s.logger.Debug(ctx, "message posted", "username", username, "sequence", seq)
	return seq, nil
}

// ReadLog streams the messages after the given sequence number. The snapshot
// is taken before ReadLog returns; a producer goroutine feeds it into a
// bounded channel and closes the channel when done or when ctx is cancelled.
func (s *Service) ReadLog(ctx context.Context, token Token, after uint64) (<-chan ChatMessage, error) {
	if _, ok := s.registry.ResolveUsername(token); !ok {
		s.recorder.Rejected("read", ReasonUnauthorized)
		return nil, common.ErrorUnauthorized
	}

	snapshot := s.log.ReadFrom(after)
	out := make(chan ChatMessage, s.streamBuffer)

	go func() {
		defer close(out)
		for _, m := range snapshot {
			if ctx.Err() != nil {
				return
			}
			select {
			case out <- m:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Seed imports bootstrap members and messages. It stops at the first member
// that is invalid or already present and at the first message that is too
// long.
func (s *Service) Seed(ctx context.Context, seed Seed) error {
	for _, m := range seed.Members {
		if err := validate.Struct(m); err != nil {
			return fmt.Errorf("seed member: %w", common.ErrInvalidMember)
		}
		if _, ok := s.registry.Join(m); !ok {
			return fmt.Errorf("seed member %q: username taken", m.Username)
		}
	}

	for _, m := range seed.Messages {
		if len(m.Text) > common.MaxMessageLen {
			return fmt.Errorf("seed message from %q: %w", m.Username, common.ErrMessageTooLong)
		}
		s.log.Append(m.Username, m.Text)
	}

	s.recorder.Size(s.registry.Len(), s.log.Len())
	s.logger.Info(ctx, "chat seeded", "members", len(seed.Members), "messages", len(seed.Messages))
	return nil
}

// Stats returns the current member and message counts.
func (s *Service) Stats() (members, messages int) {
	return s.registry.Len(), s.log.Len()
}
