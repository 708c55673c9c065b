package slot

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"slot_engine/internal/model"
	"sort"
)

// Rand - источник случайных чисел для барабанов
type Rand interface {
	IntN(n int) int
}

// RandFactory выдаёт новый источник на каждый спин
type RandFactory func() Rand

// NewSystemRandFactory - PCG, засеянный из crypto/rand. Состояние не разделяется между спинами
func NewSystemRandFactory() RandFactory {
	return func() Rand {
		var seed [16]byte
		if _, err := crand.Read(seed[:]); err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		return rand.New(rand.NewPCG(
			binary.LittleEndian.Uint64(seed[:8]),
			binary.LittleEndian.Uint64(seed[8:]),
		))
	}
}

// Generator крутит барабаны по весам символов
type Generator struct {
	newRand RandFactory
}

func NewGenerator(newRand RandFactory) *Generator {
	if newRand == nil {
		newRand = NewSystemRandFactory()
	}
	return &Generator{newRand: newRand}
}

// Generate возвращает по одному символу на барабан. Каждый барабан выпадает независимо
func (g *Generator) Generate(cfg model.MachineConfig) []string {
	r := g.newRand()

	cumulative := make([]int, len(cfg.Symbols))
	total := 0
	for i, s := range cfg.Symbols {
		total += s.Weight
		cumulative[i] = total
	}

	reels := make([]string, cfg.ReelCount)
	for i := range reels {
		draw := r.IntN(total)
		idx := sort.Search(len(cumulative), func(j int) bool {
			return cumulative[j] > draw
		})
		reels[i] = cfg.Symbols[idx].Symbol
	}

	return reels
}
