package docker

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// listFormat 请求制表符分隔的输出，docker 会把字段值里的制表符去掉，
// 因此可以安全地按制表符切分
const listFormat = "{{.ID}}\t{{.Image}}\t{{.Command}}\t{{.CreatedAt}}\t{{.Status}}\t{{.Ports}}\t{{.Names}}"

var (
	// ErrCommandMissing 表示外部命令在 PATH 中不存在
	ErrCommandMissing = errors.New("external command not found")
	// ErrCommandFailed 表示外部命令以非零状态退出
	ErrCommandFailed = errors.New("external command failed")
)

// ListContainers 调用 docker ps 并捕获标准输出。
// all 为 true 时带上 --all，列出已退出的容器。
func ListContainers(all bool) (string, error) {
	args := []string{"ps", "--format", listFormat}
	if all {
		args = append(args, "--all")
	}

	cmd := exec.Command("docker", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		err = classifyExecError(err, stderr.String())
		logrus.Errorf("failed to execute `docker %v`: %v", strings.Join(args, " "), err)
		return "", err
	}
	return stdout.String(), nil
}

// classifyExecError 把 exec 的错误归入两类：命令缺失或命令执行失败
func classifyExecError(err error, stderr string) error {
	if execErr, ok := err.(*exec.Error); ok && execErr.Err == exec.ErrNotFound {
		return errors.Wrapf(ErrCommandMissing, "%q is not installed", execErr.Name)
	}
	if msg := strings.TrimSpace(stderr); len(msg) > 0 {
		return errors.Wrap(ErrCommandFailed, msg)
	}
	return errors.Wrap(ErrCommandFailed, err.Error())
}
