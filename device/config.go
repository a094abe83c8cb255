package device

import "github.com/spf13/viper"

// Environment switches honored by the session layer, all under the
// ULANZI_ prefix:
//
//	ULANZI_DEBUG=1          enable debug logging
//	ULANZI_LOG_LEVEL=info   enable logging at the given level
//	ULANZI_LOCK_DISABLED=1  skip advisory locking (testing)
//	ULANZI_LOCK_PATH=...    override the advisory lock file
const envPrefix = "ULANZI"

// envConfig is the process-environment configuration read at session
// open.
type envConfig struct {
	Debug        bool
	LogLevel     string
	LockDisabled bool
	LockPath     string
}

func loadEnv() envConfig {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("LOCK_PATH", DefaultLockPath)

	return envConfig{
		Debug:        v.GetBool("DEBUG"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LockDisabled: v.GetBool("LOCK_DISABLED"),
		LockPath:     v.GetString("LOCK_PATH"),
	}
}
