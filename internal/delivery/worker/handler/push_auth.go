package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// pushVerifier checks the OIDC token Google attaches to authenticated push
// requests. The audience defaults to the URL the request was sent to.
type pushVerifier struct {
	audience string
	validate tokenValidator
}

func (v *pushVerifier) verify(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := v.validate(req.Context(), token, v.audienceFor(req))
	if err != nil {
		return errors.Wrap(err, "invalid push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email not verified")
	}

	return nil
}

func (v *pushVerifier) audienceFor(req *http.Request) string {
	if v.audience != "" {
		return v.audience
	}

	scheme := "https"
	if req.TLS == nil && req.Header.Get("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
