package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/shahidulislam-dev/warehouse-console/internal/auth"
	"github.com/shahidulislam-dev/warehouse-console/internal/observability"
	"github.com/shahidulislam-dev/warehouse-console/internal/session"
)

// SessionInvalidHandler is invoked after the session has been cleared by a
// 401/403 response. The argument is the route the user should land on.
type SessionInvalidHandler func(loginRoute string)

// authTransport wraps every outbound call: it attaches the bearer token when
// the session holds one and watches responses for authentication failures.
// A 401 or 403 from any call, whichever request triggered it, hard-ends the
// session.
type authTransport struct {
	base      http.RoundTripper
	session   *session.Store
	logger    *zap.Logger
	metrics   *observability.Metrics
	onInvalid SessionInvalidHandler
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.session.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.metrics.RecordError(req.URL.Path, req.Method, "transport")
		return nil, err
	}
	t.metrics.RecordRequest(req.URL.Path, req.Method, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		t.logger.Warn("server rejected credentials, ending session",
			zap.Int("status", resp.StatusCode),
			zap.String("path", req.URL.Path))
		if err := t.session.Logout(); err != nil {
			t.logger.Error("failed to clear session", zap.Error(err))
		}
		if t.onInvalid != nil {
			t.onInvalid(auth.LoginRoute)
		}
	}

	return resp, nil
}
