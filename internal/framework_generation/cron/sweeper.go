package cronjob

import (
	"os"
	"path/filepath"
	"time"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/generator"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/logging"
	"github.com/robfig/cron/v3"
)

// Sweeper removes staging and trash directories that a crashed or failed
// generation left next to the output directory.
type Sweeper struct {
	outputDir string
	maxAge    time.Duration
	now       func() time.Time
	cron      *cron.Cron
}

func NewSweeper(outputDir string, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		outputDir: outputDir,
		maxAge:    maxAge,
		now:       time.Now,
	}
}

// Start schedules Sweep on spec, a six-field cron expression.
func (s *Sweeper) Start(spec string) error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(spec, func() {
		if _, err := s.Sweep(); err != nil {
			logging.Logger.Warn("staging sweep failed", "err", err)
		}
	}); err != nil {
		return err
	}

	logging.Logger.Info("staging sweeper started", "schedule", spec, "max_age", s.maxAge)
	c.Start()
	s.cron = c
	return nil
}

// Stop stops the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Sweep removes leftovers older than maxAge and returns how many it removed.
func (s *Sweeper) Sweep() (int, error) {
	parent := filepath.Dir(filepath.Clean(s.outputDir))
	entries, err := os.ReadDir(parent)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	for _, e := range entries {
		if !generator.IsLeftover(s.outputDir, e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(parent, e.Name())); err != nil {
			logging.Logger.Warn("failed to remove leftover", "path", e.Name(), "err", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		logging.Logger.Info("staging sweep done", "removed", removed)
	}
	return removed, nil
}
