package container

import (
	"sort"
	"strings"
)

// sortFields 把用户输入的排序键映射到列名
var sortFields = map[string]string{
	"id":      FieldID,
	"image":   FieldImage,
	"command": FieldCommand,
	"created": FieldCreatedAt,
	"status":  FieldStatus,
	"ports":   FieldPorts,
	"name":    FieldNames,
	"names":   FieldNames,
}

// SortableFields 返回所有合法的排序键
func SortableFields() []string {
	fields := []string{"id", "image", "command", "created", "status", "ports", "name"}
	return fields
}

// CanonicalSortField 校验排序键是否合法，并返回对应的列名
func CanonicalSortField(field string) (string, bool) {
	column, ok := sortFields[strings.ToLower(strings.TrimSpace(field))]
	return column, ok
}

// SortRecords 按指定字段对记录做稳定排序：
// created 字段按时间比较，其余字段按大小写不敏感的字符串比较；
// 字段为空时保持原有顺序不变。
func SortRecords(records []Record, field string, desc bool) {
	if len(field) == 0 {
		return
	}
	column, ok := CanonicalSortField(field)
	if !ok {
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, _ := records[i].FieldByName(column)
		b, _ := records[j].FieldByName(column)
		c := compareField(column, a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compareField(column, a, b string) int {
	if column == FieldCreatedAt {
		ta, okA := ParseCreatedAt(a)
		tb, okB := ParseCreatedAt(b)
		if okA && okB {
			if ta.Before(tb) {
				return -1
			}
			if ta.After(tb) {
				return 1
			}
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
