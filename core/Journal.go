package core

import (
	"fmt"

	"PowerPong/logger"
)

// LogEvents returns a Simulation listener that writes gameplay events for s to logger.Log.
func LogEvents(s *GameState) func(Event) {
	return func(ev Event) {
		name := s.PaddleOf(ev.Side).NickName

		switch ev.Kind {
		case EventPaddleHit:
			logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, name, s.Ball.VelX, s.Ball.VelY))
		case EventScore:
			logger.Log.Info(fmt.Sprintf(logger.ScoreMsg, name, s.Player.CurrentScore, s.Computer.CurrentScore))
		case EventGameOver:
			logger.Log.Info(fmt.Sprintf(logger.GameOverMsg, name, FormatSnapshot(s)))
		case EventPowerUpSpawned:
			logger.Log.Debug(fmt.Sprintf(logger.PowerUpSpawnMsg, s.PowerUp.X, s.PowerUp.Y))
		case EventPowerUpExpired:
			logger.Log.Debug(logger.PowerUpExpireMsg)
		case EventPowerUpCollected:
			logger.Log.Info(fmt.Sprintf(logger.PowerUpCollectMsg, s.Ball.VelX, s.Ball.VelY))
		}
	}
}
