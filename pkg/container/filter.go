package container

import (
	"strings"
)

type filterTerm struct {
	key   string
	value string
}

// parseFilterTerms 把 "name:ombi status:running" 这样的过滤表达式拆成若干条件，
// 不含冒号的词会被忽略
func parseFilterTerms(expr string) []filterTerm {
	var terms []filterTerm
	for _, part := range strings.Fields(expr) {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		terms = append(terms, filterTerm{
			key:   strings.ToLower(kv[0]),
			value: strings.ToLower(kv[1]),
		})
	}
	return terms
}

// FilterRecords 保留满足全部过滤条件的记录。
// 每个条件要求存在某一列：列名包含 key 且字段值包含 value，均大小写不敏感。
func FilterRecords(records []Record, expr string) []Record {
	terms := parseFilterTerms(expr)
	if len(terms) == 0 {
		return records
	}

	var filtered []Record
	for _, record := range records {
		if matchesAll(&record, terms) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func matchesAll(record *Record, terms []filterTerm) bool {
	for _, term := range terms {
		matched := false
		for i, column := range Columns {
			if !strings.Contains(strings.ToLower(column), term.key) {
				continue
			}
			if strings.Contains(strings.ToLower(record.Fields()[i]), term.value) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
