package rtp_repo

import (
	"slot_engine/internal/model"
	"slot_engine/internal/repository"
	"sort"
	"sync"
	"time"
)

// Результат спина для окна
type windowSpin struct {
	bet    float64
	payout float64
}

// machineState - итоги автомата и кольцевое окно последних спинов с текущими суммами
type machineState struct {
	state        model.RTPState
	window       []windowSpin
	head         int // позиция самого старого спина, когда окно заполнено
	windowBet    float64
	windowPayout float64
}

// push добавляет спин в окно, вытесняя самый старый
func (ms *machineState) push(spin windowSpin, size int) {
	if len(ms.window) < size {
		ms.window = append(ms.window, spin)
		ms.windowBet += spin.bet
		ms.windowPayout += spin.payout
		return
	}

	old := ms.window[ms.head]
	ms.window[ms.head] = spin
	ms.windowBet += spin.bet - old.bet
	ms.windowPayout += spin.payout - old.payout
	ms.head = (ms.head + 1) % size

	// раз за полный оборот пересчитываем суммы, чтобы не копилась ошибка округления
	if ms.head == 0 {
		ms.windowBet, ms.windowPayout = 0, 0
		for _, w := range ms.window {
			ms.windowBet += w.bet
			ms.windowPayout += w.payout
		}
	}
}

// StateRepo - наблюдаемый RTP по каждому автомату. Только считает, на шансы не влияет
type StateRepo struct {
	mtx        sync.RWMutex
	windowSize int
	now        func() time.Time
	machines   map[string]*machineState
}

// NewRTPRepository Конструктор с размером окна последних спинов
func NewRTPRepository(windowSize int) repository.RTPRepository {
	return newStateRepo(windowSize, time.Now)
}

func newStateRepo(windowSize int, now func() time.Time) *StateRepo {
	if windowSize <= 0 {
		windowSize = 500
	}
	return &StateRepo{
		windowSize: windowSize,
		now:        now,
		machines:   make(map[string]*machineState),
	}
}

// Observe Обновление состояния автомата после спина
func (r *StateRepo) Observe(machine string, bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	ms, ok := r.machines[machine]
	if !ok {
		ms = &machineState{
			state:  model.RTPState{Machine: machine, WindowSize: r.windowSize},
			window: make([]windowSpin, 0, r.windowSize),
		}
		r.machines[machine] = ms
	}

	ms.state.TotalSpins++
	ms.state.TotalBet += bet
	ms.state.TotalPayout += payout
	if ms.state.TotalBet > 0 {
		ms.state.CurrentRTP = ms.state.TotalPayout / ms.state.TotalBet * 100
	}

	ms.push(windowSpin{bet: bet, payout: payout}, r.windowSize)
	if ms.windowBet > 0 {
		ms.state.WindowRTP = ms.windowPayout / ms.windowBet * 100
	} else {
		ms.state.WindowRTP = 0
	}
	ms.state.UpdatedAt = r.now()
}

// State Копия состояния автомата
func (r *StateRepo) State(machine string) model.RTPState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	ms, ok := r.machines[machine]
	if !ok {
		return model.RTPState{Machine: machine, WindowSize: r.windowSize}
	}
	return ms.state
}

// States Состояния всех автоматов, по имени
func (r *StateRepo) States() []model.RTPState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := make([]model.RTPState, 0, len(r.machines))
	for _, ms := range r.machines {
		res = append(res, ms.state)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Machine < res[j].Machine
	})
	return res
}
