package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	units "github.com/docker/go-units"

	"github.com/wangao1236/pretty-ps/pkg/container"
)

// 相邻两列之间的间隔，保证任何一列内部不会发生折行
const columnGap = 2

// statusColumn 是 STATUS 在列顺序中的下标
var statusColumn = columnIndex(container.FieldStatus)

var (
	statusUpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusDownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusElseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Table 渲染左对齐的表格：
// 每列宽度取表头与所有记录中该列内容的最大宽度，记录为空时只输出表头。
func Table(records []container.Record) string {
	rows := make([][]string, 0, len(records))
	for i := range records {
		rows = append(rows, displayFields(&records[i]))
	}
	widths := columnWidths(container.Columns, rows)

	var builder strings.Builder
	writeRow(&builder, container.Columns, widths, false)
	for _, row := range rows {
		writeRow(&builder, row, widths, true)
	}
	return builder.String()
}

// displayFields 返回用于表格展示的字段值，创建时间改成相对时间
func displayFields(record *container.Record) []string {
	fields := record.Fields()
	for i, column := range container.Columns {
		if column != container.FieldCreatedAt {
			continue
		}
		if t, ok := container.ParseCreatedAt(fields[i]); ok {
			fields[i] = units.HumanDuration(time.Since(t)) + " ago"
		}
	}
	return fields
}

// columnWidths 计算每列的展示宽度，不小于表头和任意字段值的宽度。
// docker 截断的 COMMAND 带多字节省略号，必须按显示宽度而不是字节数来算
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if lipgloss.Width(value) > widths[i] {
				widths[i] = lipgloss.Width(value)
			}
		}
	}
	return widths
}

// writeRow 先按裸文本宽度补齐，再给状态列上色，颜色码不会影响对齐
func writeRow(builder *strings.Builder, cells []string, widths []int, styled bool) {
	for i, cell := range cells {
		text := cell
		if styled && i == statusColumn {
			text = styleStatus(cell)
		}
		builder.WriteString(text)
		if i < len(cells)-1 {
			builder.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+columnGap))
		}
	}
	builder.WriteString("\n")
}

// styleStatus 按容器状态上色：运行中绿色，退出或死亡红色，其余黄色
func styleStatus(status string) string {
	lower := strings.ToLower(status)
	switch {
	case strings.Contains(lower, "up"):
		return statusUpStyle.Render(status)
	case strings.Contains(lower, "exited"), strings.Contains(lower, "dead"):
		return statusDownStyle.Render(status)
	default:
		return statusElseStyle.Render(status)
	}
}

func columnIndex(name string) int {
	for i, column := range container.Columns {
		if column == name {
			return i
		}
	}
	return -1
}
