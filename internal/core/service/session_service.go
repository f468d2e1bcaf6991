package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/core/domain"
	"github.com/99minutos/jobboard/internal/core/ports"
)

// sessionClaims is the payload of the session cookie. The cookie names the
// server record and carries nothing else.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionService keeps session state in a SessionStore and hands the browser
// an HS256 token that references it.
type SessionService struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

func NewSessionService(store ports.SessionStore, secret string, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// TTL is the lifetime of both the record and the cookie.
func (s *SessionService) TTL() time.Duration { return s.ttl }

func (s *SessionService) Load(ctx context.Context, token string) *domain.Session {
	if token == "" {
		return s.fresh()
	}
	sid, err := s.parse(token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("session token rejected")
		return s.fresh()
	}
	sess, err := s.store.Get(ctx, sid)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error().Err(err).Str("session_id", sid).Msg("session lookup failed")
		}
		return s.fresh()
	}
	sess.MarkClean()
	return sess
}

func (s *SessionService) Persist(ctx context.Context, sess *domain.Session) (string, error) {
	if err := s.store.Save(ctx, sess, s.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	sess.MarkClean()
	return s.sign(sess.ID)
}

// Start rotates the session id and binds the user. Pending flashes survive
// the rotation.
func (s *SessionService) Start(ctx context.Context, sess *domain.Session, user *domain.User) (*domain.Session, error) {
	next := s.fresh()
	if sess != nil {
		if err := s.store.Delete(ctx, sess.ID); err != nil {
			return nil, fmt.Errorf("rotate session: %w", err)
		}
		next.Flashes = sess.Flashes
	}
	next.Bind(user)
	s.logger.Info().Int64("user_id", user.ID).Str("session_id", next.ID).Msg("session started")
	return next, nil
}

// End deletes the server record. The returned session is anonymous.
func (s *SessionService) End(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	if sess != nil {
		if err := s.store.Delete(ctx, sess.ID); err != nil {
			return nil, fmt.Errorf("end session: %w", err)
		}
		if sess.Authenticated() {
			s.logger.Info().Int64("user_id", sess.UserID).Str("session_id", sess.ID).Msg("session ended")
		}
	}
	return s.fresh(), nil
}

func (s *SessionService) fresh() *domain.Session {
	return domain.NewSession(uuid.NewString(), s.now())
}

func (s *SessionService) sign(sid string) (string, error) {
	now := s.now()
	claims := sessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionService) parse(token string) (string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SessionID, nil
}
