package acalendar

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"

	"github.com/jpfluger/dateoffsets/ajson"
	"github.com/jpfluger/dateoffsets/alog"
)

var configValidate = validator.New()

// CalendarFileConfig is the decoded shape of a holiday-calendar config
// file (HJSON or JSON): a named base calendar to extend, an explicit
// weekmask override, and a list of ad-hoc holiday dates in "2006-01-02"
// form.
type CalendarFileConfig struct {
	Name     string   `json:"name,omitempty" validate:"omitempty,alphanum"`
	Weekmask []bool   `json:"weekmask,omitempty" validate:"omitempty,len=7"` // Mon..Sun
	Holidays []string `json:"holidays,omitempty" validate:"omitempty,dive,datetime=2006-01-02"`
}

// LoadCalendarConfig merges one or more HJSON/JSON calendar config files
// (later files override earlier ones, via ajson.MergeConfigs) into a
// single *Calendar built fresh from the merged result.
func LoadCalendarConfig(files ...string) (*Calendar, error) {
	var merged CalendarFileConfig
	if err := ajson.MergeConfigsInto(&merged, ajson.MergeOptions{
		Files:    files,
		UseHJSON: true,
	}); err != nil {
		return nil, fmt.Errorf("acalendar: loading calendar config: %w", err)
	}
	if err := configValidate.Struct(merged); err != nil {
		return nil, fmt.Errorf("acalendar: invalid calendar config: %w", err)
	}
	return buildFromConfig(merged)
}

func buildFromConfig(cfg CalendarFileConfig) (*Calendar, error) {
	c, err := NewNamedCalendar(cfg.Name)
	if err != nil {
		return nil, err
	}
	if len(cfg.Weekmask) == 7 {
		var wm Weekmask
		copy(wm[:], cfg.Weekmask)
		c.SetWeekmask(wm)
	}
	for _, s := range cfg.Holidays {
		ts, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("acalendar: bad holiday date %q: %w", s, err)
		}
		c.AddHoliday(ts)
	}
	return c, nil
}

// WatchCalendarConfig loads files once, registers the result under name,
// then watches the files for changes and atomically swaps in a freshly
// rebuilt calendar on each change — never mutating the previously
// published *Calendar in place, so callers already holding a reference
// keep a consistent read-only snapshot (per the "built once, read-only
// thereafter" rule the derived calendar must follow).
func WatchCalendarConfig(name string, files ...string) (*Calendar, func() error, error) {
	c, err := LoadCalendarConfig(files...)
	if err != nil {
		return nil, nil, err
	}
	SetCalendar(name, c)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("acalendar: starting config watcher: %w", err)
	}
	for _, f := range files {
		if err := watcher.Add(f); err != nil {
			_ = watcher.Close()
			return nil, nil, fmt.Errorf("acalendar: watching %q: %w", f, err)
		}
	}

	log := alog.LOGGER(alog.LOGGER_CALENDAR)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				fresh, err := LoadCalendarConfig(files...)
				if err != nil {
					log.Warn().Err(err).Str("calendar", name).Msg("reload failed, keeping previous calendar")
					continue
				}
				SetCalendar(name, fresh)
				log.Info().Str("calendar", name).Msg("reloaded calendar config")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("calendar", name).Msg("calendar config watcher error")
			}
		}
	}()

	return c, watcher.Close, nil
}
