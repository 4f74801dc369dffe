// Package stat 周期采集主机资源占用，供运行状态接口查询
package stat

import (
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

var (
	mu   sync.RWMutex
	last map[string]any
)

// LoadTop 周期采集 CPU、内存与 dir 所在磁盘的占用，fn 每轮回调一次
// 常驻协程，调用方用 go 启动
func LoadTop(dir string, fn func(map[string]any)) {
	collect(dir, fn)

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		collect(dir, fn)
	}
}

func collect(dir string, fn func(map[string]any)) {
	m := make(map[string]any, 10)
	if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
		m["cpu_percent"] = percents[0]
	}
	if v, err := mem.VirtualMemory(); err == nil {
		m["mem_total"] = v.Total
		m["mem_used"] = v.Used
		m["mem_percent"] = v.UsedPercent
	}
	if d, err := disk.Usage(dir); err == nil {
		m["disk_total"] = d.Total
		m["disk_used"] = d.Used
		m["disk_percent"] = d.UsedPercent
	}
	m["updated_at"] = time.Now().Format(time.DateTime)

	mu.Lock()
	last = m
	mu.Unlock()

	if fn != nil {
		fn(m)
	}
}

// Latest 最近一次采集结果
func Latest() map[string]any {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]any, len(last))
	for k, v := range last {
		out[k] = v
	}
	return out
}
