package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/manifoldco/promptui"

	"portfolio0/config"
	"portfolio0/db"
	"portfolio0/notifier"
	"portfolio0/secrets"
	"portfolio0/service"
	"portfolio0/utils"
)

// getServices wires the store, repositories and services the way the http
// server does, for commands that mutate content directly. Returns nil when
// the database cannot be opened; callers print the error and return so the
// process still exits 0.
var getServices = func() *service.Services {
	configs := config.GetConfigurations()
	portfolioSecrets := secrets.GetSecrets()

	appLogger := hclog.New(&hclog.LoggerOptions{
		Name:  "portfolio0-cli",
		Level: hclog.LevelFromString(configs.LogLevel),
	})

	store := db.NewSqliteDataStore(appLogger, configs.DBFilePath)
	if err := db.RunSetup(store); err != nil {
		utils.Error("failed to open database: %v", err)
		return nil
	}

	notify := notifier.NewNotifier(
		appLogger,
		configs.SiteURL,
		portfolioSecrets.RevalidationSecret,
		portfolioSecrets.BuildHookURL,
		nil,
	)

	return service.NewServices(appLogger, store, notify)
}

func getNotifier() notifier.Notifier {
	configs := config.GetConfigurations()
	portfolioSecrets := secrets.GetSecrets()

	appLogger := hclog.New(&hclog.LoggerOptions{
		Name:  "portfolio0-cli",
		Level: hclog.LevelFromString(configs.LogLevel),
	})

	return notifier.NewNotifier(
		appLogger,
		configs.SiteURL,
		portfolioSecrets.RevalidationSecret,
		portfolioSecrets.BuildHookURL,
		nil,
	)
}

// confirmDelete prompts before a destructive command unless --yes was given.
func confirmDelete(label string, skip bool) bool {
	if skip {
		return true
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		return false
	}
	return true
}
