package deps

import (
	"context"
	"time"

	"github.com/forn8njoell-cmd/promptstudio/internal/domain"
	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	TimeNow func() time.Time // for testing, defaults to time.Now
	NewID   func() string    // for testing, defaults to uuid.NewString

	Store    domain.PromptStore
	Enhancer domain.PromptEnhancer
	Images   domain.ImageGenerator

	StorePing func(ctx context.Context) error // readiness probe against the store
}
