package model

import "time"

// RTPState - наблюдаемый RTP по всем спинам автомата
type RTPState struct {
	Machine     string
	TotalSpins  int     // Сколько всего спинов сделано
	TotalBet    float64 // Сумма всех ставок
	TotalPayout float64 // Сумма всех выплат
	CurrentRTP  float64 // TotalPayout/TotalBet*100
	WindowRTP   float64 // RTP в окне последних спинов
	WindowSize  int
	UpdatedAt   time.Time
}
