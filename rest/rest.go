package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"voyager.com/trainer/game"
)

var restLogger = log.With().Str("logger_name", "trainer::rest").Logger()

var sessionManager *game.Manager

//
// APP error definition
//
type appError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RunRestServer starts the HTTP surface for trainer UIs. Every mutating
// route answers with the refreshed table state; an action whose
// preconditions fail leaves the state untouched and still answers 200.
func RunRestServer(portNo int) error {
	r := NewRouter(game.CreateSessionManager())
	restLogger.Info().Msgf("Starting trainer REST server on port %d", portNo)
	return r.Run(fmt.Sprintf(":%d", portNo))
}

// NewRouter builds the gin engine against a session manager.
func NewRouter(manager *game.Manager) *gin.Engine {
	sessionManager = manager
	r := gin.Default()

	// Only the mutating routes are rate limited; reads stay cheap.
	mutating := r.Group("", rateLimitMiddleware(rate.NewLimiter(rate.Limit(50), 100)))
	mutating.POST("/new-round", actionHandler(func(s *game.Session) { s.NewRound() }))
	mutating.POST("/hit", actionHandler(func(s *game.Session) { s.Hit() }))
	mutating.POST("/stand", actionHandler(func(s *game.Session) { s.Stand() }))
	mutating.POST("/double", actionHandler(func(s *game.Session) { s.Double() }))
	mutating.POST("/split", actionHandler(func(s *game.Session) { s.Split() }))
	mutating.POST("/surrender", actionHandler(func(s *game.Session) { s.Surrender() }))
	mutating.POST("/reset-stats", actionHandler(func(s *game.Session) { s.ResetStats() }))

	r.GET("/state", getState)
	r.GET("/stats", getStats)
	r.GET("/history", getHistory)
	return r
}

func rateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, appError{
				Code:    http.StatusTooManyRequests,
				Message: "Too many requests",
			})
			return
		}
		c.Next()
	}
}

func getSession(c *gin.Context) *game.Session {
	code := c.Query("session")
	if code == "" {
		code = "default"
	}
	return sessionManager.GetSession(code)
}

func actionHandler(action func(*game.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := getSession(c)
		action(session)
		writeJSON(c, session.State())
	}
}

func getState(c *gin.Context) {
	writeJSON(c, getSession(c).State())
}

func getStats(c *gin.Context) {
	writeJSON(c, getSession(c).Stats())
}

func getHistory(c *gin.Context) {
	history := getSession(c).History()
	if history == nil {
		history = []game.GameHistoryEntry{}
	}
	writeJSON(c, history)
}

func writeJSON(c *gin.Context, payload interface{}) {
	bytes, err := jsoniter.Marshal(payload)
	if err != nil {
		restLogger.Error().Err(err).Msg("Could not marshal response")
		c.JSON(http.StatusInternalServerError, appError{
			Code:    http.StatusInternalServerError,
			Message: "Internal Server Error",
		})
		return
	}
	c.Data(http.StatusOK, "application/json", bytes)
}
