package cards

import "strings"

// ImageFileName derives the image file name for a card. Boss cards are
// prefixed with "BOSS_" so they sort apart from playable cards.
func ImageFileName(c Card, ext string) string {
	safe := strings.TrimSpace(strings.ReplaceAll(c.Name, "\n", " "))
	safe = strings.ReplaceAll(safe, "/", "／")
	safe = strings.ReplaceAll(safe, `\`, "￥")
	if c.CardType == TypeBoss {
		return "BOSS_" + safe + ext
	}
	return safe + ext
}
