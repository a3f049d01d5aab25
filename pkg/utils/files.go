package utils

import "os"

func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func ToMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}

func MBToBytes(mb int64) int64 {
	return mb * 1024 * 1024
}
