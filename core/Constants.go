package core

import "time"

const DefaultWidth = 800  // 畫布寬度
const DefaultHeight = 600 // 畫布高度

const PaddleWidth = 10   // 球拍寬度
const PaddleHeight = 100 // 球拍高度

const BallRadius = 10 // 球半徑
const BallVelocityX = 4
const BallVelocityY = 4
const ServeVelocityY = 4      // 發球時的垂直速度
const BallSpeedIncrease = 0.5 // 每次擊球增加的速度
const DeflectionFactor = 0.35 // 擊球點偏移轉成垂直速度的比例

const ComputerPaddleSpeed = 4 // 電腦球拍移動速度
const ComputerDeadZone = 35   // 電腦球拍不動的範圍

const WinningScore = 3 // 遊戲結束分數

const PowerUpChance = 0.1 // 每個 tick 出現道具的機率
const PowerUpSize = 15
const PowerUpMargin = 20
const PowerUpDuration = 5000 * time.Millisecond
const PowerUpBoost = 1.5

const DefaultThemeKey = 'c'
const DefaultTickRate = 60

const ScoreTextX = 100
const ScoreTextY = 100

const GameOverText = "Game Over!"
const RestartText = "Click to Restart"
