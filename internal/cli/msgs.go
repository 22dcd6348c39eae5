package cli

import (
	"github.com/arthur-debert/venvx/pkg/config"
)

func nothingInstalledMsg(cfg config.Config) string {
	if cfg.UseEmoji {
		return "nothing has been installed with venvx 😴"
	}
	return "nothing has been installed with venvx"
}
