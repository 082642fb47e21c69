package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/iamomal/nutrivision-backend/models"

	"github.com/gorilla/websocket"
)

const (
	EventMealLogged          = "meal.logged"
	EventAchievementUnlocked = "achievement.unlocked"
)

// Event is the wire envelope for hub messages. Kind is one of the Event*
// constants above.
type Event struct {
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub fans out meal and achievement events to a user's open
// sockets. A user may hold several connections (phone + web).
type RealtimeHub struct {
	mu    sync.RWMutex
	conns map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{conns: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[c.UserID]
	if !ok {
		set = make(map[*WSClient]struct{})
		h.conns[c.UserID] = set
	}
	set[c] = struct{}{}
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set, ok := h.conns[c.UserID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.conns, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// ConnectionCount reports how many sockets a user currently holds.
func (h *RealtimeHub) ConnectionCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// NotifyMealLogged pushes a freshly logged meal to the user's sockets.
func (h *RealtimeHub) NotifyMealLogged(userID uint, meal *LoggedMeal) {
	h.BroadcastEvent(userID, EventMealLogged, meal)
}

// NotifyAchievementUnlocked pushes a newly earned achievement.
func (h *RealtimeHub) NotifyAchievementUnlocked(userID uint, a models.UserAchievement) {
	h.BroadcastEvent(userID, EventAchievementUnlocked, a)
}

// BroadcastEvent sends an Event to every socket the user has open.
// Write failures are ignored; dead sockets drop out when their read
// loop ends.
func (h *RealtimeHub) BroadcastEvent(userID uint, kind string, payload any) {
	msg, err := json.Marshal(Event{Kind: kind, At: time.Now(), Data: payload})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
