package osu

import (
	"fmt"
	"strconv"
	"strings"
)

// volumeField はタイミングポイント行における音量のフィールド位置
const volumeField = 5

// TimingPoint はタイミングポイント1行を表します。
// 解析時のフィールド文字列を保持しているため、変更されていない
// フィールドは元の書式（小数の桁数など）のまま再構築されます。
type TimingPoint struct {
	Timestamp   int     // ミリ秒。負の値もあります
	BeatLength  float64 // テンポ、または継承ポイントのSV係数
	Meter       int
	SampleSet   int
	SampleIndex int
	Volume      int // 0〜100
	Uninherited bool
	Effects     int
	Extra       []string // 音量以降の未知の後続フィールド

	fields    []string // 解析時のフィールド（再構築に使用）
	lineIndex int      // セクション内の行インデックス
	hasVolume bool     // 行に音量フィールドが存在するか
}

// parseTimingPoint はカンマ区切りのタイミングポイント行を解析します。
// タイムスタンプと音量以外のフィールドは数値でなくてもエラーにしません。
func parseTimingPoint(text string) (*TimingPoint, error) {
	fields := strings.Split(text, ",")
	if len(fields) < 2 {
		return nil, fmt.Errorf("フィールド数が不足しています: %d", len(fields))
	}

	timestamp, err := parseTimestamp(fields[0])
	if err != nil {
		return nil, fmt.Errorf("タイムスタンプが数値ではありません: %q", fields[0])
	}

	point := &TimingPoint{
		Timestamp:   timestamp,
		Volume:      100, // 音量フィールドがない古い形式のデフォルト値
		Uninherited: true,
		fields:      fields,
	}

	point.BeatLength, _ = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if len(fields) > 2 {
		point.Meter, _ = strconv.Atoi(strings.TrimSpace(fields[2]))
	}
	if len(fields) > 3 {
		point.SampleSet, _ = strconv.Atoi(strings.TrimSpace(fields[3]))
	}
	if len(fields) > 4 {
		point.SampleIndex, _ = strconv.Atoi(strings.TrimSpace(fields[4]))
	}
	if len(fields) > volumeField {
		volume, err := strconv.Atoi(strings.TrimSpace(fields[volumeField]))
		if err != nil {
			return nil, fmt.Errorf("音量が数値ではありません: %q", fields[volumeField])
		}
		point.Volume = volume
		point.hasVolume = true
	}
	if len(fields) > 6 {
		point.Uninherited = strings.TrimSpace(fields[6]) == "1"
	}
	if len(fields) > 7 {
		point.Effects, _ = strconv.Atoi(strings.TrimSpace(fields[7]))
	}
	if len(fields) > 8 {
		point.Extra = fields[8:]
	}

	return point, nil
}

// parseTimestamp はタイムスタンプを整数として解析します。
// 一部の古いファイルには小数のタイムスタンプがあるため、小数も許容し
// 整数部のみを使用します。
func parseTimestamp(field string) (int, error) {
	trimmed := strings.TrimSpace(field)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// HasVolume は行に音量フィールドが存在するかを返します
func (p *TimingPoint) HasVolume() bool {
	return p.hasVolume
}

// SetVolume は音量フィールドのみを書き換えます。
// 音量フィールドのない古い形式の行は変更されません。
func (p *TimingPoint) SetVolume(volume int) {
	if !p.hasVolume {
		return
	}
	p.Volume = volume
	p.fields[volumeField] = strconv.Itoa(volume)
}

// String はタイミングポイントを解析時のフィールド書式のまま1行に再構築します
func (p *TimingPoint) String() string {
	return strings.Join(p.fields, ",")
}
