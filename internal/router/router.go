package router

import (
	"net/http"
	"time"

	"matrimony-service/internal/domain"
	hrest "matrimony-service/internal/handler/rest"
	"matrimony-service/pkg/cache"
	"matrimony-service/pkg/middleware"
	"matrimony-service/pkg/response"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Options struct {
	RateLimitPerMin int
	// Cache is optional; without it requests are not rate limited.
	Cache *cache.Cache
	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy bool
	Logger     *zap.Logger
}

func SetupRoutes(
	r chi.Router,
	dh *hrest.DashboardHandler,
	ph *hrest.ProfileHandler,
	auth *middleware.AuthMiddleware,
	opts Options,
) chi.Router {
	// ---- Global Middleware ----
	r.Use(chimw.RequestID)
	if opts.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false, // must be false when using "*"
		MaxAge:           300,
	}))

	// Global limit per address runs before auth; perUser runs after it so
	// signed-in callers are counted by user id wherever they connect from.
	perUser := func(next http.Handler) http.Handler { return next }
	if opts.Cache != nil && opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimiter(opts.Cache, opts.RateLimitPerMin, time.Minute, 10*time.Minute, "global", middleware.ByIP, opts.Logger))
		perUser = middleware.RateLimiter(opts.Cache, opts.RateLimitPerMin, time.Minute, 10*time.Minute, "user", middleware.ByUser, opts.Logger)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	// ============================================================
	// Dashboard
	// ============================================================
	r.Route("/api/v1/dashboard", func(dr chi.Router) {
		dr.Post("/route", dh.HandleRoute)
		dr.Post("/guard", dh.HandleGuard)
		dr.Post("/legacy", dh.HandleLegacy)

		dr.With(auth.Optional, perUser).Get("/me", dh.HandleMe)
		dr.With(auth.RequireRoles(domain.RoleMember, domain.RoleOrganizer, domain.RoleAdmin), perUser).
			Get("/overview", dh.HandleOverview)
	})

	// Old deep links, redirected into the caller's dashboard tree
	r.Route("/legacy", func(lr chi.Router) {
		lr.Use(auth.Optional, perUser)
		lr.Get("/profile/{id}", dh.LegacyRedirect("profile/:id", "id"))
		lr.Get("/proposals/{id}", dh.LegacyRedirect("proposals/:id", "id"))
		lr.Get("/messages/{id}", dh.LegacyRedirect("messages/:id", "id"))
		lr.Get("/events/{id}", dh.LegacyRedirect("events/:id", "id"))
		lr.Get("/verify/{token}", dh.LegacyRedirect("verify/:token", "token"))
	})

	// ============================================================
	// Profile
	// ============================================================
	r.Route("/api/v1/profile", func(pr chi.Router) {
		pr.Get("/options", ph.HandleOptions)
		pr.Post("/decode", ph.HandleDecode)
		pr.Post("/encode", ph.HandleEncode)

		pr.Group(func(mr chi.Router) {
			mr.Use(auth.RequireRoles(domain.RoleMember), perUser)
			mr.Get("/", ph.HandleGetForm)
			mr.Get("/record", ph.HandleGetRecord)
			mr.Put("/", ph.HandleSave)
		})
	})

	return r
}
