package storage

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Akshayreddy3/Minesweeper-Game/game"
)

// GameSession 把一个 Board 和它的元信息绑在一起。
// Board 本身不做并发保护，所有对 Board 的读写都必须持有 Lock。
type GameSession struct {
	GameID string
	Board  *game.Board

	CreatedAt      int64
	CreatedGMTTime string
	LastActive     int64

	Lock sync.Mutex
}

var (
	sessionMap = make(map[string]*GameSession)
	mapLock    = sync.RWMutex{}
)

// Touch 刷新会话的最后活跃时间，防止被过期清理。
// LastActive 由清理协程在 mapLock 下读取，写入必须拿同一把锁。
func (s *GameSession) Touch() {
	mapLock.Lock()
	defer mapLock.Unlock()

	s.LastActive = time.Now().UTC().Unix()
}

// NewSession 为一个新对局创建会话并分配 GameID
func NewSession(b *game.Board) *GameSession {
	now := time.Now().UTC()
	return &GameSession{
		GameID:         uuid.New().String(),
		Board:          b,
		CreatedAt:      now.Unix(),
		CreatedGMTTime: now.Format("2006-01-02 15:04:05"),
		LastActive:     now.Unix(),
	}
}

// SaveSession 保存对局会话
func SaveSession(s *GameSession) {
	mapLock.Lock()
	defer mapLock.Unlock()

	sessionMap[s.GameID] = s
}

// TrySaveSession 在会话总数未达到 max 时保存会话，检查和写入在同一把锁内完成，
// 并发创建不会超出上限。max 为 0 表示不限制。
func TrySaveSession(s *GameSession, max int) bool {
	mapLock.Lock()
	defer mapLock.Unlock()

	if max > 0 && len(sessionMap) >= max {
		return false
	}
	sessionMap[s.GameID] = s
	return true
}

// GetSession 按 GameID 查找会话，不存在返回 nil
func GetSession(gameID string) *GameSession {
	mapLock.RLock()
	defer mapLock.RUnlock()

	return sessionMap[gameID]
}

// RemoveSession 删除对局会话，返回是否存在
func RemoveSession(gameID string) bool {
	mapLock.Lock()
	defer mapLock.Unlock()

	if _, ok := sessionMap[gameID]; !ok {
		return false
	}
	delete(sessionMap, gameID)
	return true
}

// SessionCount 返回当前会话总数
func SessionCount() int {
	mapLock.RLock()
	defer mapLock.RUnlock()

	return len(sessionMap)
}

// GetExpiredSessionIDs 返回最后活跃时间超过 timeoutSeconds 的会话ID
func GetExpiredSessionIDs(timeoutSeconds int64) []string {
	mapLock.RLock()
	defer mapLock.RUnlock()

	now := time.Now().UTC().Unix()
	var expired []string
	for id, s := range sessionMap {
		if now-s.LastActive > timeoutSeconds {
			expired = append(expired, id)
		}
	}
	return expired
}

// StartExpiredSessionCleanup 启动定时清理任务，
// 回收长时间没有操作的对局（玩家弃局不会调用 DELETE）。
// 清理协程随进程存活，不提供停止接口。
func StartExpiredSessionCleanup(interval time.Duration, timeoutSeconds int64) {
	log.Printf("[storage] 启动过期对局清理任务，检查间隔: %v，超时: %d秒", interval, timeoutSeconds)
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			expired := GetExpiredSessionIDs(timeoutSeconds)
			if len(expired) == 0 {
				continue
			}
			log.Printf("[storage] 发现 %d 个过期对局", len(expired))
			for _, id := range expired {
				if RemoveSession(id) {
					log.Printf("[storage] 已清理过期对局: %s", id)
				}
			}
		}
	}()
}
