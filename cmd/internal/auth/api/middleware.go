package authapi

import (
	"time"

	"github.com/gin-gonic/gin"

	"marketplace/cmd/internal/auth/session"
	"marketplace/cmd/internal/metrics"
)

// Request headers carrying the claimed owner and the opaque credential.
// The names are part of the public API contract.
const (
	HeaderOwner      = "username-key"
	HeaderCredential = "auth-token-key"
)

const (
	ctxSessionKey = "marketplace.session"
	ctxOwnerKey   = "marketplace.owner"
)

// RequireAuth returns middleware that verifies the request's credential and
// attaches the resulting Session to the request context before the handler
// runs.
//
// Every failure, whatever its kind, produces the same unauthorized response;
// the kind is recorded in logs and metrics only. Distinguishing unknown owners
// from bad signatures would let callers probe which usernames exist.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner := c.GetHeader(HeaderOwner)
		credential := c.GetHeader(HeaderCredential)

		if owner == "" || credential == "" {
			metrics.Verifications.WithLabelValues("missing_headers").Inc()
			writeUnauthorized(c)
			c.Abort()
			return
		}

		sess, err := h.sessions.Verify(c.Request.Context(), time.Now().UTC(), credential, owner)
		if err != nil {
			kind := session.Kind(err)
			metrics.Verifications.WithLabelValues(kind).Inc()
			h.log.Info("auth.verify.fail", "kind", kind, "owner", owner)
			writeUnauthorized(c)
			c.Abort()
			return
		}

		metrics.Verifications.WithLabelValues("ok").Inc()
		c.Set(ctxSessionKey, sess)
		c.Set(ctxOwnerKey, sess.Username)
		c.Next()
	}
}

// SessionFromContext returns the verified Session attached by RequireAuth.
func SessionFromContext(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// OwnerFromContext returns the verified owner username attached by RequireAuth.
func OwnerFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxOwnerKey)
	if !ok {
		return "", false
	}
	owner, ok := v.(string)
	return owner, ok
}
