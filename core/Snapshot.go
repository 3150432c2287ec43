package core

import "fmt"

const SnapshotHeader = "BS"    // 日誌中狀態快照的開頭
const SnapshotTerminator = "~" // 快照結尾

// FormatSnapshot writes ballX, ballY, playerY, playerScore, computerY, computerScore
// as one line for the logs.
func FormatSnapshot(s *GameState) string {
	payload := fmt.Sprintf("%.1f,%.1f,%.1f,%d,%.1f,%d",
		s.Ball.X, s.Ball.Y,
		s.Player.Y, s.Player.CurrentScore,
		s.Computer.Y, s.Computer.CurrentScore)
	return SnapshotHeader + payload + SnapshotTerminator
}
