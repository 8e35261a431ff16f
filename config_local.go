// config.go を直接さわらずにここで差し替え

package main

func init() {
	LocalOverride = func(cfg *Config) {

		// コメントアウトでデフォルト値が使われる。

		// 出力先（既定は docs/basic_usage.png）
		// cfg.OutFile = "docs/basic_usage.png"

		// サンプル数（多くすると線がなめらか，描画は遅くなる）
		// cfg.Samples = 10_000

		// 根の区間の表をコンソールに表示する
		// cfg.PrintTable = true

		// xlsx / tsv 出力のファイル名（"" なら保存しない）
		// cfg.XLSXFile = "brackets.xlsx"
		// cfg.TSVFile = "brackets.tsv"

		// 拡大表示の窓（根 -1.0820... の近く）
		// cfg.Inset.X = Range{Min: -1.08206, Max: -1.08203}
		// cfg.Inset.Y = Range{Min: -0.00001, Max: 0.00001}
	}
}
