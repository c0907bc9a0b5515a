// Package session holds the UI state of one visitor and runs user actions
// against the data service on its behalf.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"event-portal/internal/domain/event"
	"event-portal/internal/domain/registration"
	"event-portal/internal/pkg/clock"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/commands"
	"event-portal/internal/usecase/queries"
	"event-portal/internal/usecase/shared"
	"event-portal/internal/usecase/store"

	"github.com/google/uuid"
)

type Operation string

const (
	OpLogin    Operation = "login"
	OpLoad     Operation = "load"
	OpSave     Operation = "save"
	OpDelete   Operation = "delete"
	OpRegister Operation = "register"
)

var ErrUnknownEvent = errs.New("event not found")

// ErrAdminLoad marks a Login whose password was accepted but whose dashboard load failed.
var ErrAdminLoad = errs.New("admin load after login failed")

// InFlight mirrors the disabled state of each control in the UI.
type InFlight struct {
	Login    bool `json:"login"`
	Load     bool `json:"load"`
	Save     bool `json:"save"`
	Delete   bool `json:"delete"`
	Register bool `json:"register"`
}

// State is a consistent copy of everything the UI renders.
type State struct {
	Events        []event.Event
	Occurrences   []queries.Occurrence
	Groups        []queries.GroupedAdminView
	Calendar      queries.CalendarState
	ActiveDay     []queries.Occurrence
	InFlight      InFlight
	Feedback      *Feedback
	Authenticated bool
}

// Session is guarded by mu. Network calls run without holding it, and store
// mutations never happen under it because the store listener takes it.
type Session struct {
	ID uuid.UUID

	mu            sync.Mutex
	clock         clock.Clock
	logger        *slog.Logger
	store         *store.EventStore
	nav           *queries.Navigator
	loader        *commands.AdminLoader
	ds            shared.DataService
	auth          *commands.AuthCommands
	events        *commands.EventCommands
	registrations *commands.RegistrationCommands
	occurrences   []queries.Occurrence
	groups        []queries.GroupedAdminView
	inFlight      map[Operation]bool
	feedback      *Feedback
	authenticated bool
	lastSeen      time.Time
	unsubscribe   func()
}

func New(id uuid.UUID, ds shared.DataService, clk clock.Clock, loc *time.Location, logger *slog.Logger) *Session {
	s := &Session{
		ID:          id,
		clock:       clk,
		logger:      logger.With("session_id", id.String()),
		store:       store.NewEventStore(),
		nav:         queries.NewNavigator(clk.Now(), loc),
		ds:          ds,
		occurrences: []queries.Occurrence{},
		groups:      []queries.GroupedAdminView{},
		inFlight:    make(map[Operation]bool),
		lastSeen:    clk.Now(),
	}

	s.loader = commands.NewAdminLoader(ds, s.store)
	updater := commands.NewUpdater(s.store, s.loader)
	s.auth = commands.NewAuthCommands(ds)
	s.events = commands.NewEventCommands(ds, updater)
	s.registrations = commands.NewRegistrationCommands(ds)
	s.unsubscribe = s.store.Subscribe(s.project)

	return s
}

// project keeps the derived views in step with the store.
func (s *Session) project(snap store.Snapshot) {
	occurrences := queries.Project(snap.Events)
	groups := queries.Aggregate(snap.Events, snap.Registrations)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.occurrences = occurrences
	s.groups = groups
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	cal := s.nav.State()
	var active []queries.Occurrence
	if cal.ActiveDayOpen {
		active = queries.OccurrencesOn(cal.ViewDate, s.occurrences, s.nav.Location())
	}

	var fb *Feedback
	if s.feedback != nil {
		copied := *s.feedback
		fb = &copied
	}

	groups := s.groups
	if !s.authenticated {
		groups = []queries.GroupedAdminView{}
	}

	return State{
		Events:      s.store.Events(),
		Occurrences: s.occurrences,
		Groups:      groups,
		Calendar:    cal,
		ActiveDay:   active,
		InFlight: InFlight{
			Login:    s.inFlight[OpLogin],
			Load:     s.inFlight[OpLoad],
			Save:     s.inFlight[OpSave],
			Delete:   s.inFlight[OpDelete],
			Register: s.inFlight[OpRegister],
		},
		Feedback:      fb,
		Authenticated: s.authenticated,
	}
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Location is the calendar time zone.
func (s *Session) Location() *time.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Location()
}

// LoadEvents is the public bootstrap: it fetches the events for the calendar.
func (s *Session) LoadEvents(ctx context.Context) error {
	return s.run(ctx, OpLoad, func(ctx context.Context) (*Feedback, error) {
		return nil, commands.LoadEvents(ctx, s.ds, s.store)
	})
}

// Login opens an admin session on the data service and loads the admin view.
func (s *Session) Login(ctx context.Context, password string) error {
	err := s.run(ctx, OpLogin, func(ctx context.Context) (*Feedback, error) {
		if err := s.auth.Login(ctx, password); err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.authenticated = true
		s.mu.Unlock()
		s.logger.Info("admin logged in")
		return nil, nil
	})
	if err != nil {
		return err
	}
	if err := s.LoadAdmin(ctx); err != nil {
		return errs.Mark(err, ErrAdminLoad)
	}
	return nil
}

// LoadAdmin fetches events and registrations together. Nothing is stored unless both succeed.
func (s *Session) LoadAdmin(ctx context.Context) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	return s.run(ctx, OpLoad, func(ctx context.Context) (*Feedback, error) {
		return nil, s.loader.Load(ctx)
	})
}

// Draft returns the editor prefill: the event with uuid, or defaults when uuid is empty.
func (s *Session) Draft(uuid string) (event.Draft, error) {
	if err := s.requireAuth(); err != nil {
		return event.Draft{}, err
	}
	if uuid == "" {
		return event.NewDraft(s.clock.Now().In(s.nav.Location())), nil
	}
	current, ok := s.store.Find(uuid)
	if !ok {
		return event.Draft{}, errs.Mark(errs.Wrapf(ErrUnknownEvent, "uuid %s", uuid), errs.ErrValidation)
	}
	return event.DraftFrom(current), nil
}

// SaveEvent creates an event when uuid is empty and updates it otherwise, using the
// draft produced by editor. A cancelled edit returns nil without error.
func (s *Session) SaveEvent(ctx context.Context, uuid string, editor commands.Editor) (*event.Event, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	var current *event.Event
	if uuid != "" {
		found, ok := s.store.Find(uuid)
		if !ok {
			return nil, errs.Mark(errs.Wrapf(ErrUnknownEvent, "uuid %s", uuid), errs.ErrValidation)
		}
		current = &found
	}

	var saved *event.Event
	err := s.run(ctx, OpSave, func(ctx context.Context) (*Feedback, error) {
		var err error
		saved, err = s.events.Save(ctx, current, editor)
		switch {
		case err != nil:
			return nil, err
		case saved == nil:
			return nil, nil
		case current == nil:
			return success(MsgEventCreated), nil
		default:
			return success(MsgEventUpdated), nil
		}
	})
	return saved, err
}

func (s *Session) DeleteEvent(ctx context.Context, uuid string) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	return s.run(ctx, OpDelete, func(ctx context.Context) (*Feedback, error) {
		if err := s.events.Delete(ctx, uuid); err != nil {
			return nil, err
		}
		return success(MsgEventDeleted), nil
	})
}

// DeleteRegistration deletes on the server and reloads the whole admin data set.
func (s *Session) DeleteRegistration(ctx context.Context, uuid string) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	return s.run(ctx, OpDelete, func(ctx context.Context) (*Feedback, error) {
		if err := s.events.DeleteRegistration(ctx, uuid); err != nil {
			return nil, err
		}
		return success(MsgRegistrationDeleted), nil
	})
}

// Register submits the public registration form for eventUUID.
func (s *Session) Register(ctx context.Context, eventUUID string, form registration.Form) (string, error) {
	var message string
	err := s.run(ctx, OpRegister, func(ctx context.Context) (*Feedback, error) {
		var err error
		message, err = s.registrations.Submit(ctx, eventUUID, form)
		if err != nil {
			return nil, err
		}
		return success(message), nil
	})
	return message, err
}

// Logout drops the admin state. Events stay loaded for the public calendar.
func (s *Session) Logout() {
	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.authenticated = false
	s.feedback = nil
	s.mu.Unlock()

	s.store.ClearRegistrations()
	if wasAuthenticated {
		s.logger.Info("admin logged out")
	}
}

func (s *Session) DayClicked(day time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	onDay := queries.OccurrencesOn(day, s.occurrences, s.nav.Location())
	return s.nav.DayClicked(day, onDay)
}

func (s *Session) SetView(mode queries.ViewMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.SetView(mode)
}

func (s *Session) CloseDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.CloseDay()
}

func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Previous()
}

func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Next()
}

func (s *Session) Today() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.Today(s.clock.Now())
}

func (s *Session) Navigate(dir queries.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Navigate(dir, s.clock.Now())
}

func (s *Session) requireAuth() error {
	if !s.Authenticated() {
		return errs.Wrap(errs.ErrUnauthenticated, "admin session required")
	}
	return nil
}

// run executes fn with op marked in flight. A second call for the same op is rejected
// until the first returns. fn runs on a context detached from the caller so a started
// request completes even if the client goes away.
func (s *Session) run(ctx context.Context, op Operation, fn func(context.Context) (*Feedback, error)) error {
	if err := s.begin(op); err != nil {
		return err
	}

	fb, err := fn(context.WithoutCancel(ctx))
	s.finish(op, fb, err)
	return err
}

func (s *Session) begin(op Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[op] {
		return errs.Wrapf(errs.ErrInFlight, "%s", op)
	}
	s.inFlight[op] = true
	s.feedback = nil
	return nil
}

func (s *Session) finish(op Operation, fb *Feedback, err error) {
	s.mu.Lock()
	s.inFlight[op] = false
	s.lastSeen = s.clock.Now()

	if err == nil {
		s.feedback = fb
		s.mu.Unlock()
		return
	}

	var failure Feedback
	if op == OpLogin {
		failure = LoginFeedback(err)
	} else {
		failure = FeedbackFor(err)
	}
	s.feedback = &failure

	revert := op != OpLogin && s.authenticated && errs.Is(err, errs.ErrUnauthenticated)
	if revert {
		s.authenticated = false
	}
	s.mu.Unlock()

	if revert {
		s.logger.Warn("admin session rejected by data service, back to login", "operation", op)
		s.store.ClearRegistrations()
		return
	}
	if !errs.Is(err, errs.ErrValidation) {
		s.logger.Error("operation failed", "operation", op, "error", err.Error())
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, running := range s.inFlight {
		if running {
			return true
		}
	}
	return false
}

func (s *Session) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}
