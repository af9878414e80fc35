package installer

// Settings is what the wizard writes to .env. Zero values are left out so
// the defaults apply.
type Settings struct {
	EnableTelegram bool     `env:"FAKE_ENABLE_TELEGRAM"`
	TelegramToken  string   `env:"FAKE_TELEGRAM_TOKEN"`
	AllowedIDs     []int64  `env:"FAKE_TELEGRAM_ALLOWED_IDS" envSeparator:","`
	Trigger        string   `env:"FAKE_TRIGGER"`
	NameSources    []string `env:"FAKE_NAME_SOURCES" envSeparator:","`
	NameAPIURLs    []string `env:"FAKE_NAME_API_URLS" envSeparator:","`
}

type InstallState struct {
	Settings Settings
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
