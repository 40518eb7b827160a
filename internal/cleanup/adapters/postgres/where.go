package postgres

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"events-cleanup-service/internal/cleanup/core/domain"

	"github.com/lib/pq"
)

// Matches the timestamp format operators paste into psql.
const scriptTimestampLayout = "2006-01-02 15:04:05.000"

// whereBuilder renders a predicate as a WHERE clause body. With inline set,
// values are written as quoted literals instead of $n placeholders.
type whereBuilder struct {
	inline bool
	args   []any
}

func (b *whereBuilder) build(p domain.Predicate) (string, error) {
	if len(p.Conditions) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		part, err := b.condition(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n  AND "), nil
}

func (b *whereBuilder) condition(c domain.Condition) (string, error) {
	switch c.Kind {
	case domain.CondEnvEquals:
		return "env_id = " + b.bind(c.Value), nil
	case domain.CondEnvIn:
		if len(c.Set) == 0 {
			return "FALSE", nil
		}
		if b.inline {
			lits := make([]string, len(c.Set))
			for i, id := range c.Set {
				lits[i] = pq.QuoteLiteral(id)
			}
			return "env_id IN (" + strings.Join(lits, ", ") + ")", nil
		}
		return "env_id = ANY(" + b.bind(pq.Array(c.Set)) + ")", nil
	case domain.CondEventTypeEquals:
		return `"event" = ` + b.bind(c.Value), nil
	case domain.CondTimestampBefore:
		return `"timestamp" < ` + b.bind(c.Time), nil
	case domain.CondTimestampAtOrAfter:
		return `"timestamp" >= ` + b.bind(c.Time), nil
	case domain.CondPropertyEquals:
		payload, err := json.Marshal(map[string]string{c.Key: c.Value})
		if err != nil {
			return "", err
		}
		return "properties @> " + b.bind(string(payload)) + "::jsonb", nil
	default:
		return "", fmt.Errorf("unsupported condition: %s", c.Kind)
	}
}

func (b *whereBuilder) bind(v any) string {
	if b.inline {
		return literal(v)
	}
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func literal(v any) string {
	switch x := v.(type) {
	case time.Time:
		return pq.QuoteLiteral(x.UTC().Format(scriptTimestampLayout))
	case string:
		return pq.QuoteLiteral(x)
	default:
		return pq.QuoteLiteral(fmt.Sprint(x))
	}
}
