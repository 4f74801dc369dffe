package script

import (
	"regexp"
	"strconv"
)

// 台词文本内嵌两种标记:
//
//	[time MM:SS] 为其后的段落声明时长，分秒各两位数字
//	[note 内容]  提词重点，仅影响展示，不参与计时
//
// 不符合语法的标记不报错，按普通文本原样保留。
var (
	timeMarkerRe = regexp.MustCompile(`\[time ([0-9]{2}):([0-9]{2})\]`)
	noteMarkerRe = regexp.MustCompile(`\[note ([^\]]*)\]`)
)

// markerSeconds 把 MM:SS 两个捕获组换算成秒
func markerSeconds(minutes, seconds string) int {
	m, _ := strconv.Atoi(minutes)
	s, _ := strconv.Atoi(seconds)
	return m*60 + s
}
