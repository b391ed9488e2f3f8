package command

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wangao1236/pretty-ps/pkg/docker"
	"github.com/wangao1236/pretty-ps/pkg/util"
)

// writeFile 把渲染结果写入文件，必要时先创建父目录
func writeFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := util.EnsureDirectory(dir); err != nil {
		logrus.Errorf("failed to ensure output directory %v: %v", dir, err)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		logrus.Errorf("failed to write output to %v: %v", path, err)
		return err
	}
	return nil
}

// pipeToPager 把输出交给分页器，优先使用 $PAGER，默认 less -R
func pipeToPager(content string) error {
	pager := strings.Fields(os.Getenv("PAGER"))
	if len(pager) == 0 {
		pager = []string{"less", "-R"}
	}
	return pipeTo(content, pager[0], pager[1:]...)
}

// pipeToFzf 把输出交给 fzf 做交互式筛选
func pipeToFzf(content string) error {
	return pipeTo(content, "fzf", "--ansi")
}

func pipeTo(content, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		err = errors.Wrapf(docker.ErrCommandMissing, "%q is not installed", name)
		logrus.Errorf("failed to find %v: %v", name, err)
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		err = errors.Wrapf(docker.ErrCommandFailed, "%v: %v", name, err)
		logrus.Errorf("failed to pipe output to %v: %v", name, err)
		return err
	}
	return nil
}
