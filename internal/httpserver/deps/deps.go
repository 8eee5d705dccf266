package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pbriand/marque/internal/auth"
	"github.com/pbriand/marque/internal/logger"
	"github.com/pbriand/marque/internal/metrics"
	"github.com/pbriand/marque/internal/session"
	"github.com/pbriand/marque/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Bookmarks   store.Bookmarks    // remote bookmark store
	Users       store.Users        // credentials records
	Profiles    store.Profiles     // profile rows
	ResetTokens store.ResetTokens  // one-time password reset tokens
	Sessions    *session.Manager   // one repository per authenticated session
	Issuer      *auth.Issuer       // session token mint/verify
	Metrics     *metrics.Metrics   // Prometheus collectors

	BcryptCost    int           // bcrypt cost for password hashes
	ResetTokenTTL time.Duration // password reset token lifetime

	AllowedOrigins []string // CORS origins allowed to call the API
	TrustProxy     bool     // true if running behind a trusted reverse proxy
	AuthRateBurst  int      // rate limit bucket size for auth endpoints
	AuthRatePerMin int      // rate limit refill for auth endpoints

	RedisClient *redis.Client // for readiness checks
	SeedTrigger chan struct{} // channel to trigger a manual seed import (nil if seeding disabled)
}
