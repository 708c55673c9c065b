package slot

import (
	"slot_engine/internal/config"
	"slot_engine/internal/model"
	"slot_engine/internal/repository"
	"slot_engine/internal/service"
	"time"
)

// Deps - зависимости сервиса спинов. Generator и Now необязательны
type Deps struct {
	Machines  config.MachineRegistry
	Ledger    service.LedgerService
	History   repository.SpinHistoryRepository
	RTP       repository.RTPRepository
	StatsCfg  config.StatsConfig
	Generator *Generator
	Now       func() time.Time
}

type serv struct {
	machines  config.MachineRegistry
	ledger    service.LedgerService
	history   repository.SpinHistoryRepository
	rtp       repository.RTPRepository
	statsCfg  config.StatsConfig
	generator *Generator
	now       func() time.Time
}

// NewSlotService Создать сервис спинов поверх реестра автоматов и леджера
func NewSlotService(deps Deps) service.SlotService {
	s := &serv{
		machines:  deps.Machines,
		ledger:    deps.Ledger,
		history:   deps.History,
		rtp:       deps.RTP,
		statsCfg:  deps.StatsCfg,
		generator: deps.Generator,
		now:       deps.Now,
	}
	if s.generator == nil {
		s.generator = NewGenerator(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Machines Список автоматов из реестра
func (s *serv) Machines() []model.MachineConfig {
	return s.machines.List()
}
