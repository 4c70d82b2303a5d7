// Package session keeps live editor sessions. Each edit is debounced; the
// classification of the most recent edit is published to subscribers with a
// sequence number, and a superseded classification is never published.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"datavisor/internal/config"
	"datavisor/internal/debounce"
	"datavisor/internal/domain"
	model "datavisor/internal/domain/models/format"
	formatSvc "datavisor/internal/domain/services/format"
	"datavisor/internal/service/rules"
	"datavisor/internal/views"
)

// Config tunes the session service.
type Config struct {
	Debounce    time.Duration
	TTL         time.Duration
	MaxSessions int
}

// Service implements formatSvc.SessionService.
type Service struct {
	classifier formatSvc.Classifier
	renderer   formatSvc.Renderer
	views      *views.Registry
	cfg        Config
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// session is one live editor.
type session struct {
	id        string
	view      model.View // empty follows the detected kind
	createdAt time.Time
	debouncer *debounce.Debouncer

	mu          sync.Mutex
	seq         uint64
	latest      *formatSvc.Snapshot
	lastActive  time.Time
	subscribers map[string]chan formatSvc.Snapshot
	closed      bool
}

// NewService creates a session service.
func NewService(
	classifier formatSvc.Classifier,
	renderer formatSvc.Renderer,
	registry *views.Registry,
	cfg Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		classifier: classifier,
		renderer:   renderer,
		views:      registry,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		sessions:   make(map[string]*session),
	}
}

// Create implements formatSvc.SessionService.
func (s *Service) Create(ctx context.Context, req *formatSvc.CreateSessionRequest) (*formatSvc.SessionInfo, error) {
	if err := rules.CreateSession(req, s.views); err != nil {
		return nil, err
	}

	now := s.now()
	sess := &session{
		id:          uuid.New().String(),
		view:        model.View(req.View),
		createdAt:   now,
		lastActive:  now,
		debouncer:   debounce.New(s.cfg.Debounce),
		subscribers: make(map[string]chan formatSvc.Snapshot),
	}

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		return nil, domain.NewValidationError("session limit of %d reached", s.cfg.MaxSessions)
	}
	s.sessions[sess.id] = sess
	count := len(s.sessions)
	s.mu.Unlock()

	s.logger.Info("session created",
		"session_id", sess.id,
		"view", sess.view,
		"sessions", count,
	)

	return sess.info(s.cfg.Debounce), nil
}

// Submit implements formatSvc.SessionService. The classification runs after
// the debounce delay unless a newer edit arrives first.
func (s *Service) Submit(ctx context.Context, sessionID string, req *formatSvc.TextRequest) error {
	if err := rules.Text(req); err != nil {
		return err
	}
	sess, err := s.get(sessionID)
	if err != nil {
		return err
	}
	sess.touch(s.now())

	text := req.Text
	if err := sess.debouncer.Trigger(func(ctx context.Context) {
		s.publish(ctx, sess, text)
	}); err != nil {
		// Deleted between lookup and trigger.
		return &domain.NotFoundError{Resource: "session", ID: sessionID}
	}
	return nil
}

// Latest implements formatSvc.SessionService. Before the first publication it
// returns the placeholder rendering with sequence number zero.
func (s *Service) Latest(ctx context.Context, sessionID string) (*formatSvc.Snapshot, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = s.now()

	if sess.latest != nil {
		snap := *sess.latest
		return &snap, nil
	}
	empty := s.snapshot(sess, "", 0)
	return &empty, nil
}

// Subscribe implements formatSvc.SessionService. The channel holds at most one
// pending snapshot: a slow reader skips intermediate results and always ends
// up with the newest one.
func (s *Service) Subscribe(ctx context.Context, sessionID string) (<-chan formatSvc.Snapshot, func(), error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return nil, nil, &domain.NotFoundError{Resource: "session", ID: sessionID}
	}
	if len(sess.subscribers) >= config.MaxSubscribersPerSession {
		return nil, nil, domain.NewValidationError("session %s already has %d streams", sessionID, config.MaxSubscribersPerSession)
	}

	subID := uuid.New().String()
	ch := make(chan formatSvc.Snapshot, 1)
	if sess.latest != nil {
		ch <- *sess.latest
	}
	sess.subscribers[subID] = ch
	sess.lastActive = s.now()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			sess.mu.Lock()
			defer sess.mu.Unlock()
			if c, ok := sess.subscribers[subID]; ok {
				delete(sess.subscribers, subID)
				close(c)
			}
			sess.lastActive = s.now()
		})
	}
	return ch, cancel, nil
}

// Delete implements formatSvc.SessionService.
func (s *Service) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return &domain.NotFoundError{Resource: "session", ID: sessionID}
	}
	sess.close()

	s.logger.Info("session deleted", "session_id", sessionID)
	return nil
}

// Len returns the number of open sessions.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close drops every session.
func (s *Service) Close() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.close()
	}
}

func (s *Service) get(sessionID string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, &domain.NotFoundError{Resource: "session", ID: sessionID}
	}
	return sess, nil
}

// publish classifies text and hands the snapshot to subscribers. The context
// check and the sequence increment happen under the session lock, so a task
// cancelled by a newer edit cannot publish after the newer one.
func (s *Service) publish(ctx context.Context, sess *session, text string) {
	if ctx.Err() != nil {
		return
	}
	snap := s.snapshot(sess, text, 0)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if ctx.Err() != nil || sess.closed {
		return
	}
	sess.seq++
	snap.Seq = sess.seq
	sess.latest = &snap

	for _, ch := range sess.subscribers {
		deliver(ch, snap)
	}

	s.logger.Debug("session result published",
		"session_id", sess.id,
		"seq", snap.Seq,
		"kind", snap.Result.Kind,
		"subscribers", len(sess.subscribers),
	)
}

// snapshot classifies and renders text for sess.
func (s *Service) snapshot(sess *session, text string, seq uint64) formatSvc.Snapshot {
	res := s.classifier.Classify(text)
	view := sess.view
	if view == "" {
		view = s.renderer.DefaultView(res.Kind)
	}
	return formatSvc.Snapshot{
		SessionID: sess.id,
		Seq:       seq,
		Result:    res,
		Rendered:  s.renderer.Render(text, res, view),
		At:        s.now(),
	}
}

// deliver replaces a pending unread snapshot with snap. Only publishers
// send, and they hold the session lock, so the second send cannot block.
func deliver(ch chan formatSvc.Snapshot, snap formatSvc.Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- snap
}

func (sess *session) touch(now time.Time) {
	sess.mu.Lock()
	sess.lastActive = now
	sess.mu.Unlock()
}

func (sess *session) info(debounceDelay time.Duration) *formatSvc.SessionInfo {
	return &formatSvc.SessionInfo{
		ID:         sess.id,
		View:       string(sess.view),
		DebounceMS: debounceDelay.Milliseconds(),
		CreatedAt:  sess.createdAt,
	}
}

// close stops pending work and ends every subscription.
func (sess *session) close() {
	sess.debouncer.Stop()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return
	}
	sess.closed = true
	for id, ch := range sess.subscribers {
		delete(sess.subscribers, id)
		close(ch)
	}
}
