package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/wangao1236/pretty-ps/pkg/container"
	"github.com/wangao1236/pretty-ps/pkg/docker"
	"github.com/wangao1236/pretty-ps/pkg/render"
)

// PsFlags 是 ps 命令的全部参数，也挂在 app 上作为默认行为
var PsFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "sort-by, s",
		Usage: fmt.Sprintf("Sort containers by one of %v", container.SortableFields()),
	},
	cli.BoolFlag{
		Name:  "desc",
		Usage: "Sort in descending order",
	},
	cli.StringFlag{
		Name:  "filter, f",
		Usage: `Multi-key filter, e.g. "name:ombi status:running"`,
	},
	cli.IntFlag{
		Name:  "limit, n",
		Usage: "Limit number of rows shown",
	},
	cli.StringFlag{
		Name:  "format",
		Usage: fmt.Sprintf("Output format, one of %v", render.Formats()),
		Value: render.FormatTable,
	},
	cli.StringFlag{
		Name:  "output, o",
		Usage: "Write output to a file instead of stdout",
	},
	cli.BoolFlag{
		Name:  "pager",
		Usage: "Pipe output through a pager",
	},
	cli.BoolFlag{
		Name:  "fzf",
		Usage: "Pipe output to fzf for interactive selection",
	},
	cli.BoolFlag{
		Name:  "all, a",
		Usage: "Show all containers (default shows just running)",
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: "Only display container IDs",
	},
}

var PsCommand = cli.Command{
	Name:   "ps",
	Usage:  "List containers in an aligned, sortable table",
	Flags:  PsFlags,
	Action: PsAction,
}

// PsAction 是整个流水线：调用 docker ps，解析记录，过滤、排序、截断，渲染后输出
func PsAction(ctx *cli.Context) error {
	sortBy := ctx.String("sort-by")
	if len(sortBy) > 0 {
		if _, ok := container.CanonicalSortField(sortBy); !ok {
			return fmt.Errorf("unknown sort field %q, pick one of %v", sortBy, container.SortableFields())
		}
	}

	raw, err := docker.ListContainers(ctx.Bool("all"))
	if err != nil {
		return err
	}
	records := container.ParseRecords(raw)

	if expr := ctx.String("filter"); len(expr) > 0 {
		records = container.FilterRecords(records, expr)
	}
	container.SortRecords(records, sortBy, ctx.Bool("desc"))
	if limit := ctx.Int("limit"); limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	var out string
	if ctx.Bool("quiet") {
		out = renderIDs(records)
	} else if out, err = render.Render(records, ctx.String("format")); err != nil {
		return err
	}

	switch {
	case ctx.Bool("fzf"):
		return pipeToFzf(out)
	case len(ctx.String("output")) > 0:
		return writeFile(ctx.String("output"), out)
	case ctx.Bool("pager"):
		return pipeToPager(out)
	default:
		fmt.Print(out)
	}
	return nil
}

func renderIDs(records []container.Record) string {
	var builder strings.Builder
	for i := range records {
		builder.WriteString(records[i].ID + "\n")
	}
	return builder.String()
}
