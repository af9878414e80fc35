package config

import "os"

func IsDebug() bool {
	return os.Getenv("FAKE_DEBUG") == "1"
}
