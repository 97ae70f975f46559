// Package osu は .osu 形式のビートマップファイルの解析と再構築を行います。
//
// ビートマップは [General] や [TimingPoints] などの名前付きセクションで
// 構成されるテキストファイルです。このパッケージはセクションの順序、
// 空行、コメント、各行の改行コード（CRLF/LF混在を含む）を保持したまま
// 解析・再構築できるため、変更していない箇所はバイト単位で一致します。
package osu

import (
	"fmt"
	"strings"
)

// TimingPointsSection はタイミングポイントを含むセクション名
const TimingPointsSection = "TimingPoints"

// line は1行の内容と改行コードを保持します
type line struct {
	text string // 改行コードを含まない行の内容
	eol  string // "\r\n"、"\n"、またはファイル末尾の場合は ""
}

// Beatmap はビートマップファイル全体を表します
type Beatmap struct {
	prelude  []line // 最初のセクションヘッダーより前の行（フォーマットバージョンなど）
	sections []*Section
}

// Section はビートマップの名前付きセクションを表します
type Section struct {
	Name   string
	header line
	lines  []line
	points []*TimingPoint // TimingPoints セクションのみ。lines のインデックスと対応
}

// Parse はファイル内容をビートマップとして解析します。
// 認識できないセクションは行のリストとしてそのまま保持されます。
// TimingPoints セクションの不正な行は ErrMalformedTimingPoint を返します。
func Parse(content string) (*Beatmap, error) {
	b := &Beatmap{}
	var cur *Section

	for i, ln := range splitLines(content) {
		if name, ok := sectionName(ln.text); ok {
			cur = &Section{Name: name, header: ln}
			b.sections = append(b.sections, cur)
			continue
		}

		if cur == nil {
			b.prelude = append(b.prelude, ln)
			continue
		}

		idx := len(cur.lines)
		cur.lines = append(cur.lines, ln)

		if cur.Name != TimingPointsSection {
			continue
		}

		trimmed := strings.TrimSpace(ln.text)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		point, err := parseTimingPoint(ln.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %d行目: %w", ErrMalformedTimingPoint, i+1, err)
		}
		point.lineIndex = idx
		cur.points = append(cur.points, point)
	}

	return b, nil
}

// Section は指定された名前の最初のセクションを返します。
// 存在しない場合は nil を返します。
func (b *Beatmap) Section(name string) *Section {
	for _, sec := range b.sections {
		if sec.Name == name {
			return sec
		}
	}
	return nil
}

// TimingPoints はファイル内の全タイミングポイントをファイル順で返します
func (b *Beatmap) TimingPoints() []*TimingPoint {
	var points []*TimingPoint
	for _, sec := range b.sections {
		if sec.Name == TimingPointsSection {
			points = append(points, sec.points...)
		}
	}
	return points
}

// Serialize はビートマップを元の行順・改行コードのままテキストに再構築します。
// タイミングポイントは解析時のフィールド書式を保ったまま出力されるため、
// 変更されていない箇所は入力とバイト単位で一致します。
func (b *Beatmap) Serialize() string {
	var sb strings.Builder

	for _, ln := range b.prelude {
		sb.WriteString(ln.text)
		sb.WriteString(ln.eol)
	}

	for _, sec := range b.sections {
		sb.WriteString(sec.header.text)
		sb.WriteString(sec.header.eol)

		pi := 0
		for i, ln := range sec.lines {
			if pi < len(sec.points) && sec.points[pi].lineIndex == i {
				sb.WriteString(sec.points[pi].String())
				sb.WriteString(ln.eol)
				pi++
				continue
			}
			sb.WriteString(ln.text)
			sb.WriteString(ln.eol)
		}
	}

	return sb.String()
}

// splitLines は内容を改行コードを保持したまま行に分割します
func splitLines(s string) []line {
	var lines []line
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' {
			continue
		}
		text := s[start:i]
		eol := "\n"
		if strings.HasSuffix(text, "\r") {
			text = text[:len(text)-1]
			eol = "\r\n"
		}
		lines = append(lines, line{text: text, eol: eol})
		start = i + 1
	}
	if start < len(s) {
		lines = append(lines, line{text: s[start:]})
	}
	return lines
}

// sectionName は行がセクションヘッダーの場合、その名前を返します
func sectionName(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return "", false
	}
	return trimmed[1 : len(trimmed)-1], true
}
