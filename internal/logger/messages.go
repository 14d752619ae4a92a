package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Card data
		"Loaded %d cards from %s":           "%s から %d 枚のカードを読み込みました",
		"Reloaded %d cards":                 "%d 枚のカードを再読み込みしました",
		"Skipping %s: %v":                   "%s をスキップします: %v",
		"Error loading %s: %v":              "%s の読み込みに失敗しました: %v",
		"Card not found: %s":                "カードが見つかりません: %s",
		"Failed to load cards at startup: %v": "起動時のカード読み込みに失敗しました: %v",

		// Fonts
		"Failed to load font from config path %s: %v":      "設定のフォント %s を読み込めません: %v",
		"Failed to load bundled default font %s: %v":       "同梱フォント %s を読み込めません: %v",
		"Using embedded Go Regular font":                   "組み込みの Go Regular フォントを使用します",
		"No usable font, falling back to basic glyphs: %v": "使用できるフォントがありません。基本グリフで描画します: %v",
		"Failed to create font face at %.1fpx: %v":         "%.1fpx のフォントフェイスを作成できません: %v",

		// Rendering
		"Rendering card %q (%s)":             "カード %q (%s) を描画中",
		"Rendering %d cards with %d workers": "%d 枚のカードを %d ワーカーで描画中",
		"Rendered %d cards to %s":            "%d 枚のカードを %s に描画しました",
		"Skipping image %s: %v":              "画像 %s をスキップします: %v",
		"QR code skipped: %v":                "QRコードを省略しました: %v",
		"Saved %s":                           "%s を保存しました",

		// Server
		"Failed to load settings: %v": "設定の読み込みに失敗しました: %v",
		"Starting server on %s":       "%s でサーバーを起動します",
		"Server stopped: %v":          "サーバーが停止しました: %v",
	})
}
