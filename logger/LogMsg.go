package logger

const SessionStartMsg = "遊戲開始 畫面:%s 尺寸:%dx%d tick:%dHz seed:%d"
const SessionEndMsg = "離開遊戲"

const PaddleHitMsg = "%s 擊球 球速 (%.2f, %.2f)"
const ScoreMsg = "%s 得分！比分 %d : %d"
const GameOverMsg = "遊戲結束！%s 獲勝 %s"
const RestartMsg = "玩家點擊重新開始"

const PowerUpSpawnMsg = "道具出現 x:%.1f y:%.1f"
const PowerUpExpireMsg = "道具逾時消失"
const PowerUpCollectMsg = "球吃到道具！球速 (%.2f, %.2f)"

const ThemeToggleMsg = "切換配色 球拍:%s 球:%s"
const PaletteReloadMsg = "設定檔 %s 變更，重新載入配色"
const PaletteReloadFailMsg = "設定檔 %s 配色錯誤：%v"
