package ledger

import "slot_engine/internal/model"

// gamesPerLevel - сколько игр нужно на один уровень
const gamesPerLevel = 100

// LevelFor - уровень по числу сыгранных игр. levelCap == 0 - без ограничения
func LevelFor(gamesPlayed int64, levelCap int) int {
	level := int(gamesPlayed/gamesPerLevel) + 1
	if levelCap > 0 && level > levelCap {
		level = levelCap
	}
	return level
}

// progress пересчитывает уровень и VIP после спина. Уровень не понижается
func (s *serv) progress(acc *model.Account) {
	acc.Level = max(acc.Level, LevelFor(acc.GamesPlayed, s.cfg.LevelCap()))
	if acc.Level >= s.cfg.VIPLevel() {
		acc.VIP = true
	}
}
