package testutil

import (
	"os"
	"regexp"
	"testing"

	"github.com/joho/godotenv"
)

func maskSecret(s string) string {
	re := regexp.MustCompile(`\b(\w{4})\w+\b`)
	s = re.ReplaceAllString(s, "$1******")
	return s
}

// IntegrationTestConfigured returns the API credentials for the given
// env prefix, e.g. FTX_API_KEY and FTX_API_SECRET. The test is only
// enabled when both are present and TEST_<prefix> is set to 1. A .env
// file in the working directory is honored.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	_ = godotenv.Load()

	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s", maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}
