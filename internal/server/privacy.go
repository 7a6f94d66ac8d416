package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Paths that are never logged.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/favicon",
	"/healthz",
}

// NewSalt returns a random salt for hashing client addresses.
func NewSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}
	return hex.EncodeToString(b), nil
}

// hashIP hashes ip with salt so the same client maps to the same value
// within one salt without storing the address.
func hashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

func tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// requestLogger logs page requests with a hashed client address. Requests
// sending "DNT: 1" and asset paths are served without being logged.
func requestLogger(logger *log.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		entry := logger.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"client":     hashIP(c.ClientIP(), salt),
			"user_agent": c.Request.UserAgent(),
			"elapsed":    time.Since(start),
		})
		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last()).Error("http request")
			return
		}
		entry.Info("http request")
	}
}
