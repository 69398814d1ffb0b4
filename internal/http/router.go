package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const activitiesPrefix = "/activities/"

type RouterConfig struct {
	Activities *ActivityHandler
	Metrics    http.Handler
	Static     bool
	Logger     *slog.Logger
	Middleware []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	resp := newResponder(cfg.Logger)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			methodNotAllowed(r.Context(), resp, w, http.MethodGet, http.MethodHead)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.Activities != nil {
		mux.HandleFunc("/activities", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(r.Context(), resp, w, http.MethodGet)
				return
			}
			cfg.Activities.List(w, r)
		})
		mux.HandleFunc(activitiesPrefix, func(w http.ResponseWriter, r *http.Request) {
			name, action, ok := splitActivityPath(r.URL)
			if !ok {
				resp.writeDetail(r.Context(), w, http.StatusNotFound, detailNotFound)
				return
			}
			r = r.WithContext(ContextWithActivityName(r.Context(), name))
			switch action {
			case "signup":
				if r.Method != http.MethodPost {
					methodNotAllowed(r.Context(), resp, w, http.MethodPost)
					return
				}
				cfg.Activities.Signup(w, r)
			case "unregister":
				if r.Method != http.MethodDelete {
					methodNotAllowed(r.Context(), resp, w, http.MethodDelete)
					return
				}
				cfg.Activities.Unregister(w, r)
			default:
				resp.writeDetail(r.Context(), w, http.StatusNotFound, detailNotFound)
			}
		})
	}

	if cfg.Metrics != nil {
		mux.Handle("/metrics", cfg.Metrics)
	}

	if cfg.Static {
		mux.Handle(staticPrefix, staticHandler())
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				resp.writeDetail(r.Context(), w, http.StatusNotFound, detailNotFound)
				return
			}
			http.Redirect(w, r, staticIndex, http.StatusTemporaryRedirect)
		})
	} else {
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			resp.writeDetail(r.Context(), w, http.StatusNotFound, detailNotFound)
		})
	}

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

// splitActivityPath extracts the percent-decoded activity name and the action
// from /activities/{name}/{action}. The escaped path is used so that an
// encoded slash stays part of the name.
func splitActivityPath(u *url.URL) (name, action string, ok bool) {
	rest := strings.TrimPrefix(u.EscapedPath(), activitiesPrefix)
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}

	escapedName, action := rest[:idx], rest[idx+1:]
	if strings.Contains(escapedName, "/") {
		return "", "", false
	}
	name, err := url.PathUnescape(escapedName)
	if err != nil || name == "" {
		return "", "", false
	}
	return name, action, true
}
