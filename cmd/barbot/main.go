package main

import (
	"log"

	"barbot/core/cmd"
	"barbot/internal/bot"
)

func main() {
	err := cmd.Run(cmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config/config.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			return bot.LoadConfig(path)
		},
		Bootstrap: func(carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			return bot.New(carrier.(*bot.AppConfig))
		},
	})
	if err != nil {
		log.Fatalf("barbot: %v", err)
	}
}
