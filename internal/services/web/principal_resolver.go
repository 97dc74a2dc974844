package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"

	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/httpx"
	webi18n "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/platform/i18n"
)

// userIDHeader carries the acting organizer id on proxied requests. The web
// surface trusts an upstream gateway to authenticate before setting it.
const userIDHeader = "X-User-ID"

const defaultViewerName = "Organizer"

type requestPrincipalState struct {
	userIDOnce   sync.Once
	userID       int64
	viewerOnce   sync.Once
	viewer       module.Viewer
	languageOnce sync.Once
	language     string
}

type requestPrincipalStateKey struct{}

type principalResolver struct {
	defaultUserID int64
}

func newPrincipalResolver(cfg Config) principalResolver {
	return principalResolver{defaultUserID: cfg.DefaultUserID}
}

// resolveRequestUserIDUncached maps the user header to an organizer id.
// A missing header falls back to the configured default; a malformed or
// non-positive header resolves to zero so one organizer's data is never
// served under another's id.
func (p principalResolver) resolveRequestUserIDUncached(r *http.Request) int64 {
	if r == nil {
		return 0
	}
	raw := strings.TrimSpace(r.Header.Get(userIDHeader))
	if raw == "" {
		return p.defaultUserID
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0
	}
	return userID
}

func (p principalResolver) resolveRequestUserID(r *http.Request) int64 {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.userIDOnce.Do(func() {
			state.userID = p.resolveRequestUserIDUncached(r)
		})
		return state.userID
	}
	return p.resolveRequestUserIDUncached(r)
}

func (p principalResolver) resolveViewerUncached(r *http.Request) module.Viewer {
	if p.resolveRequestUserID(r) <= 0 {
		return module.Viewer{}
	}
	return module.Viewer{DisplayName: defaultViewerName}
}

func (p principalResolver) resolveViewer(r *http.Request) module.Viewer {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.viewerOnce.Do(func() {
			state.viewer = p.resolveViewerUncached(r)
		})
		return state.viewer
	}
	return p.resolveViewerUncached(r)
}

func (p principalResolver) resolveRequestLanguageUncached(r *http.Request) string {
	return webi18n.ResolveTag(r, nil).String()
}

func (p principalResolver) resolveRequestLanguage(r *http.Request) string {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.languageOnce.Do(func() {
			state.language = p.resolveRequestLanguageUncached(r)
		})
		return state.language
	}
	return p.resolveRequestLanguageUncached(r)
}

func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestPrincipalState{}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	return requestPrincipalStateFromContext(r.Context())
}

func requestPrincipalStateFromContext(ctx context.Context) *requestPrincipalState {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}
