// Package models は osuvolume コマンドで使用するデータモデルを定義します
package models

// TargetResult は1つのターゲットファイルの処理結果を表します
type TargetResult struct {
	Path      string
	Updated   bool  // 音量が書き換えられたか（ドライラン時は書き換え予定か）
	Unchanged bool  // 解析できたが変更が不要だったか
	Err       error // スキップの原因。nil の場合は成功
}

// Summary はバッチ処理全体の集計を表します
type Summary struct {
	Updated   int
	Unchanged int
	Skipped   int
	Results   []TargetResult
}

// Add はターゲットの処理結果を集計に追加します
func (s *Summary) Add(result TargetResult) {
	s.Results = append(s.Results, result)
	switch {
	case result.Err != nil:
		s.Skipped++
	case result.Updated:
		s.Updated++
	default:
		s.Unchanged++
	}
}
