package osu

import "sort"

// ProfilePoint は音量プロファイルの1点を表します
type ProfilePoint struct {
	Timestamp int
	Volume    int
}

// Profile はビートマップから抽出した音量プロファイルです。
// タイムスタンプ昇順の (タイムスタンプ, 音量) の列で、テンポや
// エフェクトとは独立した音量の時系列のみを表します。
type Profile struct {
	Points []ProfilePoint
}

// VolumeProfile はタイミングポイントから音量プロファイルを抽出します。
// 同一タイムスタンプのポイントはファイル内で後にあるものが優先され、
// 連続する重複は取り除かれます。タイミングポイントがない場合は
// 空のプロファイルを返します。
func (b *Beatmap) VolumeProfile() Profile {
	timingPoints := b.TimingPoints()

	sorted := make([]*TimingPoint, len(timingPoints))
	copy(sorted, timingPoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	var points []ProfilePoint
	for _, tp := range sorted {
		point := ProfilePoint{Timestamp: tp.Timestamp, Volume: tp.Volume}
		if n := len(points); n > 0 && points[n-1].Timestamp == point.Timestamp {
			// 同一タイムスタンプは後勝ち
			points[n-1] = point
			continue
		}
		points = append(points, point)
	}

	return Profile{Points: points}
}

// VolumeAt は時刻 t で有効な音量を返します。
// t 以下で最大のタイムスタンプを持つ点の音量（last-write-wins）を返し、
// t が全ての点より前の場合は最初の点の音量を返します。
// プロファイルが空の場合は ok が false になります。
func (p Profile) VolumeAt(t int) (volume int, ok bool) {
	if len(p.Points) == 0 {
		return 0, false
	}
	i := sort.Search(len(p.Points), func(i int) bool {
		return p.Points[i].Timestamp > t
	})
	if i == 0 {
		return p.Points[0].Volume, true
	}
	return p.Points[i-1].Volume, true
}

// Apply はプロファイルの音量をビートマップの各タイミングポイントに
// 適用します。音量フィールド以外は変更されません。空のプロファイルは
// 何も変更しません。
func (p Profile) Apply(b *Beatmap) {
	if len(p.Points) == 0 {
		return
	}
	for _, tp := range b.TimingPoints() {
		if volume, ok := p.VolumeAt(tp.Timestamp); ok {
			tp.SetVolume(volume)
		}
	}
}
