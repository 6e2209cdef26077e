package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/dealerdrive/dealerdrive/internal/pkg/constants"
	"github.com/dealerdrive/dealerdrive/internal/pkg/logger"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// Claims are the JWT claims expected on a WebSocket connection
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// conn pairs an authenticated client with its live connection
type conn struct {
	client *models.WebSocketClient
	ws     *websocket.Conn
}

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	conns    map[string]*conn
	writeMu  sync.Map // *websocket.Conn -> *sync.Mutex
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		conns: make(map[string]*conn),
		cfg:   jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	m.addConn(client, ws)
	defer m.removeConn(client.UserID)

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.validateToken(parts[1])
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

// validateToken validates the JWT token and returns the claims
func (m *Manager) validateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (m *Manager) addConn(client *models.WebSocketClient, ws *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	m.conns[client.UserID] = &conn{client: client, ws: ws}
}

func (m *Manager) removeConn(userID string) {
	m.Lock()
	defer m.Unlock()
	if c, ok := m.conns[userID]; ok {
		m.writeMu.Delete(c.ws)
	}
	delete(m.conns, userID)
}

// writeLock returns the write mutex for a connection. gorilla/websocket permits
// only one concurrent writer per connection, and stats pushes can race the read
// loop's replies.
func (m *Manager) writeLock(ws *websocket.Conn) *sync.Mutex {
	mu, _ := m.writeMu.LoadOrStore(ws, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// GetClient returns a connected client by ID
func (m *Manager) GetClient(userID string) (*models.WebSocketClient, bool) {
	m.RLock()
	defer m.RUnlock()
	c, exists := m.conns[userID]
	if !exists {
		return nil, false
	}
	return c.client, true
}

// SendMessage sends an event message to a WebSocket connection
func (m *Manager) SendMessage(ws *websocket.Conn, event string, data interface{}) error {
	if ws == nil {
		return nil // tolerated for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	mu := m.writeLock(ws)
	mu.Lock()
	defer mu.Unlock()

	return ws.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error message to a WebSocket connection
func (m *Manager) SendErrorMessage(ws *websocket.Conn, code string, message string) error {
	return m.SendMessage(ws, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// NotifyClient sends an event to a specific connected client, if present
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	c, exists := m.conns[userID]
	m.RUnlock()

	if !exists {
		return
	}

	if err := m.SendMessage(c.ws, event, data); err != nil {
		logger.Warn("Failed to notify client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}
