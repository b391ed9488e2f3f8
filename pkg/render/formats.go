package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/wangao1236/pretty-ps/pkg/container"
)

const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Formats 返回所有支持的输出格式
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatCSV, FormatMarkdown}
}

// Render 按指定格式渲染记录，格式不支持时报错
func Render(records []container.Record, format string) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatTable:
		return Table(records), nil
	case FormatJSON:
		return JSON(records)
	case FormatCSV:
		return CSV(records)
	case FormatMarkdown:
		return Markdown(records), nil
	default:
		return "", errors.Errorf("unsupported format %q, pick one of %v", format, Formats())
	}
}

// JSON 输出记录数组，字段名与 docker ps 的 JSON 输出保持一致
func JSON(records []container.Record) (string, error) {
	if records == nil {
		records = []container.Record{}
	}
	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal records")
	}
	return string(body) + "\n", nil
}

// CSV 输出表头加每条记录一行
func CSV(records []container.Record) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(container.Columns); err != nil {
		return "", errors.Wrap(err, "failed to write csv header")
	}
	for i := range records {
		if err := writer.Write(records[i].Fields()); err != nil {
			return "", errors.Wrap(err, "failed to write csv row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", errors.Wrap(err, "failed to flush csv")
	}
	return buf.String(), nil
}

// Markdown 输出管道分隔的 Markdown 表格
func Markdown(records []container.Record) string {
	var builder strings.Builder
	builder.WriteString("| " + strings.Join(container.Columns, " | ") + " |\n")
	separators := make([]string, len(container.Columns))
	for i, column := range container.Columns {
		separators[i] = strings.Repeat("-", len(column))
	}
	builder.WriteString("| " + strings.Join(separators, " | ") + " |\n")
	for i := range records {
		builder.WriteString("| " + strings.Join(records[i].Fields(), " | ") + " |\n")
	}
	return builder.String()
}
