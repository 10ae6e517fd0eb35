package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/wttj/ic-metrics/internal/app"
)

func main() {
	// A missing .env file is fine, the environment may be set directly.
	_ = godotenv.Load()

	l := logrus.New()

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	if err := newRootCmd(conf, l).Execute(); err != nil {
		reportError(l, err)
		os.Exit(1)
	}
}

// reportError logs err with a message matching its category, so a user can
// tell a bad token from a bad date argument without reading a stack of wraps.
func reportError(l logrus.FieldLogger, err error) {
	switch {
	case app.IsConfigurationError(err):
		l.Errorf("configuration error: %v", err)
	case app.IsAuthenticationError(err):
		l.Errorf("authentication failed, check GITHUB_TOKEN: %v", err)
	case app.IsRateLimitError(err):
		l.Errorf("github rate limit hit, retry later: %v", err)
	case app.IsInvalidDateFormatError(err):
		l.Errorf("%v", err)
	case app.IsDataNotFoundError(err):
		l.Errorf("%v", err)
	default:
		l.Errorf("%v", err)
	}
}
