package slot

import (
	"os"
	"slot_engine/internal/config"
	"slot_engine/internal/config/env"
	"slot_engine/internal/model"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// seqRand отдаёт заранее заданные значения по кругу
type seqRand struct {
	mtx    sync.Mutex
	values []int
	pos    int
}

func (r *seqRand) IntN(n int) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v % n
}

// forceReels - фабрика, при которой барабаны выпадают ровно в symbols
func forceReels(t *testing.T, cfg model.MachineConfig, symbols ...string) RandFactory {
	t.Helper()

	starts := make(map[string]int, len(cfg.Symbols))
	total := 0
	for _, s := range cfg.Symbols {
		starts[s.Symbol] = total
		total += s.Weight
	}

	draws := make([]int, len(symbols))
	for i, s := range symbols {
		start, ok := starts[s]
		if !ok {
			t.Fatalf("symbol %s is not on machine %s", s, cfg.Type)
		}
		draws[i] = start
	}

	return func() Rand {
		return &seqRand{values: draws}
	}
}

func loadMachines(t *testing.T) config.MachineRegistry {
	t.Helper()

	data, err := os.ReadFile("../../../configs/machines.yaml")
	if err != nil {
		t.Fatalf("read machines: %v", err)
	}
	reg, err := env.ParseMachineRegistry(data)
	if err != nil {
		t.Fatalf("parse machines: %v", err)
	}
	return reg
}

func machine(t *testing.T, reg config.MachineRegistry, machineType string) model.MachineConfig {
	t.Helper()

	m, ok := reg.Get(machineType)
	if !ok {
		t.Fatalf("machine %s not configured", machineType)
	}
	return m
}

type testLedgerConfig struct {
	starting decimal.Decimal
}

func (c testLedgerConfig) StartingBalance() decimal.Decimal    { return c.starting }
func (c testLedgerConfig) LevelCap() int                       { return 0 }
func (c testLedgerConfig) VIPLevel() int                       { return 5 }
func (c testLedgerConfig) DailyBonusBase() decimal.Decimal     { return decimal.NewFromInt(100) }
func (c testLedgerConfig) DailyBonusPerLevel() decimal.Decimal { return decimal.NewFromInt(25) }
func (c testLedgerConfig) DailyBonusCooldown() time.Duration   { return 24 * time.Hour }
func (c testLedgerConfig) MaxRetries() int                     { return 3 }

type testStatsConfig struct{}

func (testStatsConfig) SessionGap() time.Duration { return 30 * time.Minute }
func (testStatsConfig) HistoryLimit() int         { return 1000 }
func (testStatsConfig) RTPWindow() int            { return 100 }
func (testStatsConfig) RTPReportSchedule() string { return "@every 1m" }

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
