package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/proxline/proxline/internal/pkg/logger"
	"github.com/proxline/proxline/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application based on
// configuration. Returns nil when disabled; all call sites are nil-safe.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without New Relic",
			logger.Err(err))
		return nil
	}

	return nrApp
}
