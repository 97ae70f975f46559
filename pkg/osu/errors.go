package osu

import "errors"

var (
	// ErrMalformedTimingPoint はタイミングポイント行を解析できない場合のエラー
	ErrMalformedTimingPoint = errors.New("タイミングポイントを解析できません")
)
