package util

import (
	"fmt"
	"os"
)

// EnsureDirectory 检查目录是否存在，不存在则创建
func EnsureDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%v exists but is not a directory", dir)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %v: %v", dir, err)
	}
	return os.MkdirAll(dir, os.ModePerm)
}
