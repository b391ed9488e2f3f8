package container

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleOutput = "2cf8a9b6e3d1\tnginx:latest\t\"/docker-entrypoint.…\"\t2023-05-01 10:00:00 +0000 UTC\tUp 2 hours\t0.0.0.0:8080->80/tcp, :::8080->80/tcp\tweb\n" +
	"9d4e11fa07bc\tredis:7\t\"docker-entrypoint.s…\"\t2023-05-01 09:00:00 +0000 UTC\tUp 3 hours\t6379/tcp\tcache\n" +
	"5ab2c87d901e\tpostgres:15\t\"docker-entrypoint.s…\"\t2023-04-30 22:30:00 +0000 UTC\tExited (0) 5 hours ago\t\tdb\n"

func TestParseRecords(t *testing.T) {
	records := ParseRecords(sampleOutput)
	assert.Equal(t, 3, len(records))

	assert.Equal(t, "2cf8a9b6e3d1", records[0].ID)
	assert.Equal(t, "nginx:latest", records[0].Image)
	assert.Equal(t, "2023-05-01 10:00:00 +0000 UTC", records[0].CreatedAt)
	assert.Equal(t, "Up 2 hours", records[0].Status)
	assert.Equal(t, "0.0.0.0:8080->80/tcp, :::8080->80/tcp", records[0].Ports)
	assert.Equal(t, "web", records[0].Names)

	// 退出的容器没有端口，但字段依然存在
	assert.Equal(t, "", records[2].Ports)
	assert.Equal(t, "db", records[2].Names)
}

func TestParseRecordsEmptyInput(t *testing.T) {
	assert.Equal(t, 0, len(ParseRecords("")))
	assert.Equal(t, 0, len(ParseRecords("\n\n")))
}

func TestParseRecordsShortLine(t *testing.T) {
	records := ParseRecords("2cf8a9b6e3d1\tnginx:latest\n")
	assert.Equal(t, 1, len(records))
	assert.Equal(t, "nginx:latest", records[0].Image)
	assert.Equal(t, len(Columns), len(records[0].Fields()))
	assert.Equal(t, "", records[0].Names)
}

func TestFieldByName(t *testing.T) {
	records := ParseRecords(sampleOutput)

	value, ok := records[0].FieldByName("NAMES")
	assert.Equal(t, true, ok)
	assert.Equal(t, "web", value)

	// 列名大小写不敏感
	value, ok = records[1].FieldByName("container id")
	assert.Equal(t, true, ok)
	assert.Equal(t, "9d4e11fa07bc", value)

	_, ok = records[0].FieldByName("no-such-column")
	assert.Equal(t, false, ok)
}

func TestParseCreatedAt(t *testing.T) {
	parsed, ok := ParseCreatedAt("2023-05-01 10:00:00 +0000 UTC")
	assert.Equal(t, true, ok)
	assert.Equal(t, true, parsed.Equal(time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)))

	_, ok = ParseCreatedAt("yesterday")
	assert.Equal(t, false, ok)
}
