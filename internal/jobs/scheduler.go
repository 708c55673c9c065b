package jobs

import (
	"fmt"
	"slot_engine/internal/repository"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	cron     *cron.Cron
	rtpRepo  repository.RTPRepository
	schedule string
}

// NewScheduler создаёт планировщик с расписанием отчёта по RTP
func NewScheduler(rtpRepo repository.RTPRepository, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		rtpRepo:  rtpRepo,
		schedule: schedule,
	}
}

// Start регистрирует задачи и запускает планировщик
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.ReportRTP); err != nil {
		return fmt.Errorf("schedule rtp report %q: %w", s.schedule, err)
	}

	s.cron.Start()
	log.WithField("schedule", s.schedule).Info("scheduler started")
	return nil
}

// ReportRTP пишет в лог наблюдаемый RTP по каждому автомату
func (s *Scheduler) ReportRTP() {
	states := s.rtpRepo.States()
	if len(states) == 0 {
		log.Debug("[CRON] no spins yet, rtp report skipped")
		return
	}

	for _, st := range states {
		log.WithFields(log.Fields{
			"machine":      st.Machine,
			"spins":        st.TotalSpins,
			"total_bet":    st.TotalBet,
			"total_payout": st.TotalPayout,
			"rtp":          fmt.Sprintf("%.2f", st.CurrentRTP),
			"window_rtp":   fmt.Sprintf("%.2f", st.WindowRTP),
			"window_size":  st.WindowSize,
		}).Info("[CRON] rtp report")
	}
}

// Stop останавливает планировщик и ждёт выполняющиеся задачи
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("scheduler stopped")
}
