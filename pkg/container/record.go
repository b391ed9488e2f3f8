package container

import (
	"strings"
	"time"
)

// 列名与 docker ps 的表头保持一致
const (
	FieldID        = "CONTAINER ID"
	FieldImage     = "IMAGE"
	FieldCommand   = "COMMAND"
	FieldCreatedAt = "CREATED"
	FieldStatus    = "STATUS"
	FieldPorts     = "PORTS"
	FieldNames     = "NAMES"
)

// createdAtLayout 是 docker ps 中 {{.CreatedAt}} 输出的时间格式
const createdAtLayout = "2006-01-02 15:04:05 -0700 MST"

// Columns 按照列表命令的输出顺序排列
var Columns = []string{
	FieldID, FieldImage, FieldCommand, FieldCreatedAt, FieldStatus, FieldPorts, FieldNames,
}

// Record 表示列表命令输出的一行，即一个容器
type Record struct {
	ID        string `json:"ID"`
	Image     string `json:"Image"`
	Command   string `json:"Command"`
	CreatedAt string `json:"CreatedAt"`
	Status    string `json:"Status"`
	Ports     string `json:"Ports"`
	Names     string `json:"Names"`
}

// Fields 按照列顺序返回各字段的值
func (r *Record) Fields() []string {
	return []string{r.ID, r.Image, r.Command, r.CreatedAt, r.Status, r.Ports, r.Names}
}

// FieldByName 根据列名取字段值，列名大小写不敏感
func (r *Record) FieldByName(name string) (string, bool) {
	for i, field := range Columns {
		if strings.EqualFold(field, name) {
			return r.Fields()[i], true
		}
	}
	return "", false
}

// ParseRecords 把列表命令的原始输出按行拆分，每行按制表符拆成字段。
// 字段不足的行用空串补齐，多余的字段合并进最后一列。
// 空输入返回空序列，不报错。
func ParseRecords(raw string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) > len(Columns) {
			rest := strings.Join(fields[len(Columns)-1:], " ")
			fields = append(fields[:len(Columns)-1], rest)
		}
		for len(fields) < len(Columns) {
			fields = append(fields, "")
		}
		records = append(records, Record{
			ID:        fields[0],
			Image:     fields[1],
			Command:   fields[2],
			CreatedAt: fields[3],
			Status:    fields[4],
			Ports:     fields[5],
			Names:     fields[6],
		})
	}
	return records
}

// ParseCreatedAt 解析列表命令输出的创建时间
func ParseCreatedAt(value string) (time.Time, bool) {
	t, err := time.Parse(createdAtLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
