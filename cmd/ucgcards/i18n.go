package main

import "github.com/ideamans/go-l10n"

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Render card images, print sheets and decks": "カード画像・印刷シート・デッキを生成",
		"settings file (YAML or JSON)":               "設定ファイル (YAML または JSON)",
		"card data directory":                        "カードデータのフォルダ",
		"font file":                                  "フォントファイル",
		"output directory":                           "出力先フォルダ",
		"parallel render workers":                    "並列描画ワーカー数",
		"suppress log output":                        "ログ出力を抑制",
		"Interrupted, shutting down...":              "中断されました。終了中...",

		// render / render-all / sheet
		"Render card JSON files to PNG":                           "カードJSONをPNGに描画",
		"Render every card in the data directory or a CSV sheet":  "データフォルダまたはCSVの全カードを描画",
		"read cards from a CSV file instead":                      "CSVファイルからカードを読み込む",
		"Lay out card images on 3x3 print sheets":                 "カード画像を3x3の印刷シートに配置",
		"output file base name":                                   "出力ファイル名",
		"no card files given":                                     "カードファイルが指定されていません",
		"no images given":                                         "画像が指定されていません",
		"nothing to print":                                        "印刷するカードがありません",

		// search
		"Search the card data": "カードを検索",
		"free text":            "フリーワード",
		"color (repeatable)":   "色 (複数指定可)",
		"tag":                  "特徴",
		"card type":            "カードタイプ",

		// deck
		"Work with .ucgdeck files":                       ".ucgdeck ファイルを操作",
		"Add or remove copies of a card":                 "カードの枚数を増減",
		"copies to add, negative to remove":              "追加枚数 (負数で削除)",
		"Print the deck list as text":                    "デッキリストをテキストで表示",
		"Render the deck onto print sheets":              "デッキを印刷シートに描画",
		"Render a deck overview image":                   "デッキ一覧画像を生成",
		"Save the deck share code as a QR image":         "デッキ共有コードをQR画像で保存",
		"exactly one deck file expected":                 "デッキファイルを1つ指定してください",
		"usage: deck add <file.ucgdeck> <card.json>":     "使い方: deck add <file.ucgdeck> <card.json>",
		"%s: %d cards, boss %s":                          "%s: %d 枚, ボス %s",

		// params / config
		"Manage the tag vocabulary":                      "特徴リストを管理",
		"Show the saved tags":                            "保存済みの特徴を表示",
		"Collect tags from every card and save them":     "全カードから特徴を収集して保存",
		"Remove tags from the vocabulary":                "特徴を削除",
		"%d tags added, %d total":                        "%d 件追加, 合計 %d 件",
		"Settings file helpers":                          "設定ファイルの操作",
		"Write a settings file with the default values":  "既定値で設定ファイルを作成",
		"Wrote %s":                                       "%s を書き出しました",
	})
}
