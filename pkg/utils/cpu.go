package utils

import "github.com/shirou/gopsutil/cpu"

// CheckCPUUsage reports whether host CPU usage is at or below the given
// ceiling, along with the measured value. A measurement error reads as
// over-ceiling so callers log it rather than stay silent.
func CheckCPUUsage(maxCPUUsage float64) (bool, float64) {
	usage, err := cpu.Percent(0, false)
	if err != nil || len(usage) == 0 {
		return false, 0
	}
	return usage[0] <= maxCPUUsage, usage[0]
}
