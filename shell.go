package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akeil/journal/internal/errors"
	"github.com/akeil/journal/internal/logging"
)

// State is the state of the editor.
type State int

const (
	// IdleNew means no entry is selected and the draft is a new entry.
	IdleNew State = iota
	// Editing means the draft was loaded from the selected entry.
	Editing
)

func (s State) String() string {
	switch s {
	case IdleNew:
		return "new"
	case Editing:
		return "editing"
	default:
		return "UNKNOWN"
	}
}

// Draft is the unsaved state of the entry being edited.
type Draft struct {
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Config  PaperConfig `json:"config"`
}

// ConfigObserver is notified whenever the paper settings of the draft change.
type ConfigObserver interface {
	ConfigChanged(c PaperConfig)
}

// ObserverFunc adapts a function to the ConfigObserver interface.
type ObserverFunc func(c PaperConfig)

func (f ObserverFunc) ConfigChanged(c PaperConfig) {
	f(c)
}

// NewID creates a time based unique identifier for an entry.
func NewID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		logging.Warning("Failed to create time based UUID: %v", err)
		return uuid.NewString()
	}
	return id.String()
}

// Option configures a Shell.
type Option func(*Shell)

// WithIDSource replaces the function used to create entry IDs.
func WithIDSource(f func() string) Option {
	return func(s *Shell) {
		s.newID = f
	}
}

// WithClock replaces the function used to timestamp saved entries.
func WithClock(f func() time.Time) Option {
	return func(s *Shell) {
		s.now = f
	}
}

// WithConfig sets the initial paper settings.
func WithConfig(c PaperConfig) Option {
	return func(s *Shell) {
		s.draft.Config = c
	}
}

// Shell holds the editor state: the draft, the selected entry and the
// observers which repaint the paper when the settings change.
//
// All changes to the Store should go through the Shell.
// A Shell is not safe for concurrent use.
type Shell struct {
	store     *Store
	draft     Draft
	selected  string
	newID     func() string
	now       func() time.Time
	observers []subscription
	nextObs   int
}

type subscription struct {
	key int
	obs ConfigObserver
}

// NewShell creates an editor for the given store, starting with an empty
// draft and the default paper settings.
func NewShell(store *Store, opts ...Option) *Shell {
	s := &Shell{
		store: store,
		draft: Draft{Config: DefaultConfig()},
		newID: NewID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the entry store the shell writes to.
func (s *Shell) Store() *Store {
	return s.store
}

// Subscribe registers an observer for config changes and delivers the
// current config to it right away. Observers are called in the order they
// subscribed.
//
// The returned function removes the observer.
func (s *Shell) Subscribe(o ConfigObserver) func() {
	key := s.nextObs
	s.nextObs++
	s.observers = append(s.observers, subscription{key, o})
	o.ConfigChanged(s.draft.Config)

	return func() {
		for i, sub := range s.observers {
			if sub.key == key {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// State tells if a new entry is being written or an existing one edited.
func (s *Shell) State() State {
	if s.selected == "" {
		return IdleNew
	}
	return Editing
}

// Selected returns the ID of the entry being edited, if any.
func (s *Shell) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Draft returns a copy of the current draft.
func (s *Shell) Draft() Draft {
	return s.draft
}

// NewEntry discards the selection and clears title and content.
// The paper settings are kept.
func (s *Shell) NewEntry() {
	s.selected = ""
	s.draft.Title = ""
	s.draft.Content = ""
}

// LoadEntry copies title, content and config from the stored entry into the
// draft and selects it.
func (s *Shell) LoadEntry(id string) error {
	e, err := s.store.Get(id)
	if err != nil {
		return err
	}

	s.selected = e.ID
	s.draft = Draft{
		Title:   e.Title,
		Content: e.Content,
		Config:  e.Config,
	}
	logging.Debug("Loaded entry %q", id)
	s.notify()
	return nil
}

// Save writes the draft to the store.
//
// A draft with blank content is not saved and Save returns false without
// an error. A new entry is created if nothing is selected, otherwise the
// selected entry is updated in place.
func (s *Shell) Save() (bool, error) {
	if strings.TrimSpace(s.draft.Content) == "" {
		logging.Debug("Skip saving draft with blank content")
		return false, nil
	}

	title := s.draft.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle(s.store.Len())
	}
	date := s.now().UTC()

	if s.selected == "" {
		e := Entry{
			ID:      s.newID(),
			Title:   title,
			Content: s.draft.Content,
			Date:    date,
			Config:  s.draft.Config,
		}
		err := s.store.Create(e)
		if err != nil {
			return false, errors.Wrap(err, "save new entry")
		}
		s.selected = e.ID
	} else {
		err := s.store.Update(s.selected, Patch{
			Title:   title,
			Content: s.draft.Content,
			Date:    date,
			Config:  s.draft.Config,
		})
		if err != nil {
			return false, errors.Wrap(err, "save entry %q", s.selected)
		}
	}

	s.draft.Title = title
	logging.Info("Saved entry %q", s.selected)
	return true, nil
}

// DeleteEntry removes an entry from the store.
//
// If it is the selected entry, the draft is reset to a new entry and
// unsaved changes are lost.
func (s *Shell) DeleteEntry(id string) {
	s.store.Remove(id)
	if id != "" && id == s.selected {
		s.NewEntry()
	}
}

func (s *Shell) SetTitle(title string) {
	s.draft.Title = title
}

func (s *Shell) SetContent(content string) {
	s.draft.Content = content
}

func (s *Shell) SetPaperColor(c Color) {
	s.updateConfig(func(cfg *PaperConfig) { cfg.PaperColor = c })
}

func (s *Shell) SetLineColor(c Color) {
	s.updateConfig(func(cfg *PaperConfig) { cfg.LineColor = c })
}

func (s *Shell) SetTextColor(c Color) {
	s.updateConfig(func(cfg *PaperConfig) { cfg.TextColor = c })
}

func (s *Shell) SetPattern(p Pattern) error {
	err := validateVar("pattern", p, "pattern")
	if err != nil {
		return err
	}
	s.updateConfig(func(cfg *PaperConfig) { cfg.Pattern = p })
	return nil
}

// SetLineWidth accepts widths from 0.5 to 3 in steps of 0.5.
func (s *Shell) SetLineWidth(w float64) error {
	err := validateVar("lineWidth", w, "gte=0.5,lte=3,halfstep")
	if err != nil {
		return err
	}
	s.updateConfig(func(cfg *PaperConfig) { cfg.LineWidth = w })
	return nil
}

// SetLineSpacing accepts spacings from 20 to 50 pixels.
func (s *Shell) SetLineSpacing(px int) error {
	err := validateVar("lineSpacing", px, "gte=20,lte=50")
	if err != nil {
		return err
	}
	s.updateConfig(func(cfg *PaperConfig) { cfg.LineSpacing = px })
	return nil
}

func (s *Shell) SetFont(f Font) error {
	err := validateVar("font", f, "font")
	if err != nil {
		return err
	}
	s.updateConfig(func(cfg *PaperConfig) { cfg.Font = f })
	return nil
}

// SetFontSize accepts sizes from 12 to 32 pixels.
func (s *Shell) SetFontSize(px int) error {
	err := validateVar("fontSize", px, "gte=12,lte=32")
	if err != nil {
		return err
	}
	s.updateConfig(func(cfg *PaperConfig) { cfg.FontSize = px })
	return nil
}

func (s *Shell) updateConfig(f func(*PaperConfig)) {
	f(&s.draft.Config)
	s.notify()
}

func (s *Shell) notify() {
	for _, sub := range s.observers {
		sub.obs.ConfigChanged(s.draft.Config)
	}
}
